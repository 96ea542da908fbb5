// Package colstore provides the in-memory columnar core of a time-series
// table engine.
//
// A table is stored as chunks. Each chunk covers one time range and holds
// named columns of equal length:
//
//   - Label columns identify a series. Values are dictionary-encoded, so each
//     distinct label is stored once and rows refer to it by id.
//   - Field columns hold the samples of a series as one nullable fixed-size
//     list per row, one entry per point in the chunk's time range.
//
// # Quick Start
//
//	chunk := colstore.NewChunk(colstore.ChunkMeta{
//	    StartAt:   start,
//	    Interval:  10 * time.Second,
//	    SeriesLen: 360,
//	})
//
//	job := colstore.NewStringLabel("job")
//	cpu := colstore.NewField[float64]("cpu", 360)
//	_ = chunk.AddColumn(job)
//	_ = chunk.AddColumn(cpu)
//
//	_ = chunk.Update(func() error {
//	    job.PushValue([]byte("api"))
//	    cpu.PushValues(samples, valid)
//	    return nil
//	})
//
// # Indexes
//
// Label columns carry any number of secondary indexes (see package index).
// BuildIndexes builds them in parallel over the existing rows; later pushes
// keep them current.
//
//	err := chunk.BuildIndexes(ctx, map[string]index.Config{
//	    "job":  index.Inverted(),
//	    "host": index.Sparse(1024),
//	})
//
// # Selection
//
// Select intersects the index lookups of every matcher and checks the
// surviving rows against the raw labels whenever an index could have
// returned extra rows:
//
//	rows, err := chunk.Select(ctx, job.Equal([]byte("api")), host.Equal(addr))
//
// # Packages
//
//   - bitmap: growable bit vector and bit-offset views
//   - array: primitive, list, fixed-size list and nullable list arrays
//   - dictionary: value deduplication and dictionary-encoded arrays
//   - index: inverted and bloom-filter block indexes with fusion
package colstore
