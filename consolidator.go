package consolidate

import "fmt"

// Asset references one physical file and the half-open sample range it
// backs. DataPath is the in-file dataset location for formats that have one.
type Asset struct {
	URI      string `json:"uri"`
	DataPath string `json:"data_path,omitempty"`
	Range    Range  `json:"range"`
}

// Consolidator tracks one (resource, field) array stream. Shape, Chunks,
// Assets and Summary are side-effect-free and may be queried at any time;
// they always reflect exactly the datums consumed so far. Consume must be
// serialized externally if datums arrive from multiple goroutines.
type Consolidator interface {
	Shape() []int
	Chunks() [][]int
	Assets() []Asset
	Extent() int
	Summary() *Summary
	Consume(datum *StreamDatum) error
}

// consolidator is the state and arithmetic shared by every storage-layout
// variant. Variants differ only in asset bookkeeping, supplied through the
// record hook.
type consolidator struct {
	resource   *StreamResource
	key        DataKey
	dtype      *Dtype
	unitShape  []int
	chunkShape []int

	// Stackable selects the reserved stacked-axis shape bookkeeping.
	Stackable bool
	// JoinChunks coarsens the leading chunk grid to actual write granularity.
	JoinChunks bool

	extent int
	assets []Asset

	// record appends the assets newly backing [start, stop). Set by the
	// variant constructor; runs after extent has advanced.
	record func(start, stop int)
}

func newConsolidator(res *StreamResource, desc *Descriptor) (consolidator, error) {
	if res == nil || desc == nil {
		return consolidator{}, &ConfigurationError{Reason: "nil stream resource or descriptor"}
	}
	key, ok := desc.DataKeys[res.DataKey]
	if !ok {
		return consolidator{}, &ConfigurationError{
			Reason: fmt.Sprintf("descriptor %q has no data key %q", desc.UID, res.DataKey),
		}
	}
	if len(key.Shape) == 0 {
		return consolidator{}, &ConfigurationError{
			Reason: fmt.Sprintf("data key %q declares an empty shape", res.DataKey),
		}
	}
	for _, n := range key.Shape {
		if n < 0 {
			return consolidator{}, &ConfigurationError{
				Reason: fmt.Sprintf("data key %q declares negative shape %v", res.DataKey, key.Shape),
			}
		}
	}
	if len(res.Parameters.ChunkShape) > len(key.Shape)+1 {
		return consolidator{}, &ConfigurationError{
			Reason: fmt.Sprintf("chunk shape %v has rank %d but the array has rank %d",
				res.Parameters.ChunkShape, len(res.Parameters.ChunkShape), len(key.Shape)+1),
		}
	}

	var dtype *Dtype
	if key.DtypeNumpy != "" {
		dt, err := ParseDtype(key.DtypeNumpy)
		if err != nil {
			return consolidator{}, &ConfigurationError{
				Reason: fmt.Sprintf("data key %q: %v", res.DataKey, err),
			}
		}
		dtype = &dt
	}

	return consolidator{
		resource:   res,
		key:        key,
		dtype:      dtype,
		unitShape:  append([]int(nil), key.Shape...),
		chunkShape: append([]int(nil), res.Parameters.ChunkShape...),
	}, nil
}

// Shape reports the accumulated array shape: consumed extent first, then the
// per-sample unit shape. Well-defined at extent zero.
func (c *consolidator) Shape() []int {
	return ComputeShape(c.unitShape, c.extent, c.Stackable)
}

// Chunks reports the chunk grid for the current shape. Recomputed in full on
// every call; a grown extent can change every entry of the leading dimension.
func (c *consolidator) Chunks() [][]int {
	grid := ComputeChunkGrid(c.Shape(), c.chunkShape)
	if c.JoinChunks {
		grid[0] = joinLeadingChunks(c.assets)
	}
	return grid
}

// Assets returns the physical files backing the array so far, in order.
// Ranges partition [0, extent) without gaps or overlap.
func (c *consolidator) Assets() []Asset {
	return append([]Asset(nil), c.assets...)
}

// Extent returns the number of samples consumed so far.
func (c *consolidator) Extent() int { return c.extent }

// Summary returns the description downstream chunked readers address the
// array by.
func (c *consolidator) Summary() *Summary {
	return &Summary{
		Shape:      c.Shape(),
		Chunks:     c.Chunks(),
		Kind:       c.key.Dtype,
		Dtype:      c.dtype,
		Compressor: compressorFor(c.resource),
	}
}

// Consume applies one stream datum. The datum's range must begin exactly at
// the current extent; gaps, overlaps and regressions are rejected and leave
// the consolidator untouched. Duplicate datums are rejected the same way,
// not silently absorbed.
func (c *consolidator) Consume(datum *StreamDatum) error {
	if datum == nil {
		return &ConfigurationError{Reason: "nil stream datum"}
	}
	if datum.StreamResource != "" && c.resource.UID != "" && datum.StreamResource != c.resource.UID {
		return &ConfigurationError{
			Reason: fmt.Sprintf("stream datum %q belongs to resource %q, not %q",
				datum.UID, datum.StreamResource, c.resource.UID),
		}
	}
	if datum.Indices.Start < 0 || datum.Indices.Stop < datum.Indices.Start ||
		datum.Indices.Start != c.extent {
		return &SequencingError{Expected: c.extent, Range: datum.Indices}
	}

	c.extent = datum.Indices.Stop
	c.record(datum.Indices.Start, datum.Indices.Stop)
	return nil
}
