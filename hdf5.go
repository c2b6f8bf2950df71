package consolidate

// HDF5Consolidator tracks a stream backed by one append-only HDF5 file:
// every sample lands in a single dataset, so exactly one asset exists,
// created on the first consume and always covering [0, extent).
type HDF5Consolidator struct {
	consolidator

	// Dataset is the in-file path of the dataset holding the array.
	Dataset string
	// SWMR reports whether the file is written in single-writer
	// multiple-reader mode, i.e. whether readers may open it mid-acquisition.
	SWMR bool
}

var _ Consolidator = (*HDF5Consolidator)(nil)

func NewHDF5Consolidator(res *StreamResource, desc *Descriptor) (*HDF5Consolidator, error) {
	base, err := newConsolidator(res, desc)
	if err != nil {
		return nil, err
	}
	h := &HDF5Consolidator{
		consolidator: base,
		Dataset:      res.Parameters.Dataset,
		SWMR:         res.Parameters.SWMR,
	}
	h.record = h.recordAssets
	return h, nil
}

// recordAssets creates the single backing asset lazily and keeps its covered
// range in step with the extent. The range is bookkeeping for readers, not
// per-event state: the file always covers everything consumed so far.
func (h *HDF5Consolidator) recordAssets(start, stop int) {
	if len(h.assets) == 0 {
		h.assets = append(h.assets, Asset{
			URI:      h.resource.FilePath(),
			DataPath: h.Dataset,
		})
	}
	h.assets[0].Range.Stop = h.extent
}
