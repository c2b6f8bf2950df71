package consolidate

// Constructor builds one storage-layout variant from a stream resource and
// the descriptor of the stream it belongs to.
type Constructor func(*StreamResource, *Descriptor) (Consolidator, error)

// MIME types with registered storage layouts.
const (
	MimetypeHDF5    = "application/x-hdf5"
	MimetypeTIFFSeq = "multipart/related;type=image/tiff"
	MimetypeJPEGSeq = "multipart/related;type=image/jpeg"
)

// registry maps a stream resource mimetype to the variant that understands
// its storage layout. Populated once at init; new layouts register here
// without touching the engine.
var registry = map[string]Constructor{}

func init() {
	Register(MimetypeHDF5, func(r *StreamResource, d *Descriptor) (Consolidator, error) {
		return NewHDF5Consolidator(r, d)
	})
	imageSeq := func(r *StreamResource, d *Descriptor) (Consolidator, error) {
		return NewImageSeqConsolidator(r, d)
	}
	Register(MimetypeTIFFSeq, imageSeq)
	Register(MimetypeJPEGSeq, imageSeq)
}

// Register binds a mimetype to a consolidator constructor. Later
// registrations replace earlier ones.
func Register(mimetype string, fn Constructor) {
	registry[mimetype] = fn
}

// New selects the storage-layout variant declared by the resource's mimetype
// and wires a fresh consolidator at extent zero. No I/O happens here or in
// any later operation.
func New(res *StreamResource, desc *Descriptor) (Consolidator, error) {
	if res == nil {
		return nil, &ConfigurationError{Reason: "nil stream resource"}
	}
	fn, ok := registry[res.Mimetype]
	if !ok {
		return nil, &UnsupportedFormatError{Mimetype: res.Mimetype}
	}
	return fn(res, desc)
}
