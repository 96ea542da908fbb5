package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrRowOverflow is returned when a row count does not fit a row id.
var ErrRowOverflow = errors.New("row count exceeds uint32 row ids")

// RowID converts a row index to a row id.
func RowID(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrRowOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", ErrRowOverflow, v)
	}
	return uint32(v), nil
}
