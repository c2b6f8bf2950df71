package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryDispatch(t *testing.T) {
	t.Parallel()
	desc := testDescriptor()

	cons, err := New(hdf5Resource("test_img", nil), desc)
	require.NoError(t, err)
	_, ok := cons.(*HDF5Consolidator)
	assert.True(t, ok, "application/x-hdf5 must dispatch to the single-file variant")

	for _, format := range []string{"tiff", "jpeg"} {
		cons, err := New(imageSeqResource(format, "test_img", []int{1}), desc)
		require.NoError(t, err)
		_, ok := cons.(*ImageSeqConsolidator)
		assert.True(t, ok, "image sequences must dispatch to the multi-file variant")
	}

	assert.Equal(t, 0, cons.Extent(), "factory-built consolidators start at extent zero")
}

func TestFactoryUnsupportedFormat(t *testing.T) {
	t.Parallel()
	res := hdf5Resource("test_img", nil)
	res.Mimetype = "application/x-parquet"

	_, err := New(res, testDescriptor())
	var fmtErr *UnsupportedFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, "application/x-parquet", fmtErr.Mimetype)
}

func TestFactoryRegister(t *testing.T) {
	// mutates the process-wide registry; not parallel
	Register("application/x-test-layout", func(r *StreamResource, d *Descriptor) (Consolidator, error) {
		return NewHDF5Consolidator(r, d)
	})
	defer delete(registry, "application/x-test-layout")

	res := hdf5Resource("test_img", nil)
	res.Mimetype = "application/x-test-layout"
	cons, err := New(res, testDescriptor())
	require.NoError(t, err)
	assert.IsType(t, &HDF5Consolidator{}, cons)
}
