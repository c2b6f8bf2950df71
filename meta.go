package consolidate

import (
	"io"

	"github.com/qri-io/dataset/compression"
)

// Summary is the self-consistent description handed to downstream chunked
// readers: how much of the array exists, how it is chunked, and how its
// elements are encoded. Chunks carries one sequence of block lengths per
// dimension; unlike a zarr grid the blocks need not be uniform.
type Summary struct {
	Shape      []int            `json:"shape"`
	Chunks     [][]int          `json:"chunks"`
	Kind       Kind             `json:"dtype,omitempty"`
	Dtype      *Dtype           `json:"dtype_numpy,omitempty"`
	Compressor *CompressionMeta `json:"compressor,omitempty"`
}

// CompressionMeta identifies the codec applied to stored blocks. The engine
// never touches bytes itself; Decompressor exists for readers that do.
type CompressionMeta struct {
	ID string `json:"id"`
}

func (m *CompressionMeta) Decompressor(r io.ReadCloser) (io.ReadCloser, error) {
	return compression.Decompressor(m.ID, r)
}

func compressorFor(res *StreamResource) *CompressionMeta {
	if res == nil || res.Parameters.Compression == "" {
		return nil
	}
	return &CompressionMeta{ID: res.Parameters.Compression}
}
