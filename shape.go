package consolidate

// ComputeShape returns the shape of the accumulated array after extent
// samples: the extent followed by the per-sample unit shape. Stackable
// reserves an alternate bookkeeping mode where a per-sample axis folds into
// the leading axis; no observed stream exercises a fold, so the flag does not
// change the result yet.
func ComputeShape(unitShape []int, extent int, stackable bool) []int {
	shape := make([]int, 0, len(unitShape)+1)
	shape = append(shape, extent)
	shape = append(shape, unitShape...)
	return shape
}

// ComputeChunkGrid partitions shape into per-dimension chunk lengths, each
// dimension's lengths summing to that dimension's extent. chunkShape declares
// a nominal chunk length per dimension and may be shorter than the shape;
// unspecified trailing dimensions chunk as one whole-extent block, as do
// declared lengths that are zero, negative, or at least the dimension's
// extent.
func ComputeChunkGrid(shape, chunkShape []int) [][]int {
	grid := make([][]int, len(shape))
	for d, extent := range shape {
		c := 0
		if d < len(chunkShape) {
			c = chunkShape[d]
		}
		grid[d] = chunkDim(extent, c)
	}
	return grid
}

// chunkDim splits one dimension of length extent into full chunks of c
// followed by a shorter trailing chunk when c does not divide extent.
// Out-of-range declarations clip to a single whole-dimension chunk, which
// also covers a dimension still shorter than its design chunk length during
// accumulation.
func chunkDim(extent, c int) []int {
	if c <= 0 || c >= extent {
		return []int{extent}
	}
	n := extent / c
	dim := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		dim = append(dim, c)
	}
	if rem := extent % c; rem != 0 {
		dim = append(dim, rem)
	}
	return dim
}

// joinLeadingChunks rebuilds the leading-dimension grid from the ranges that
// were actually written, one chunk per contiguous asset range. Post-pass for
// the JoinChunks mode; trailing dimensions are never joined.
func joinLeadingChunks(assets []Asset) []int {
	joined := make([]int, 0, len(assets))
	for _, a := range assets {
		if w := a.Range.Width(); w > 0 {
			joined = append(joined, w)
		}
	}
	if len(joined) == 0 {
		return []int{0}
	}
	return joined
}
