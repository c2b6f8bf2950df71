// Package consolidate tracks the logical shape and chunk decomposition of
// large arrays whose bytes are written externally and announced after the
// fact, in ranges. It consumes bluesky event-model documents (descriptors,
// stream resources, stream datums) and answers, at any point during
// acquisition, how much of an array exists, in what shape, and how it is
// physically divided into retrievable blocks. It never opens or reads the
// files it references.
package consolidate

import "strings"

// Range is a half-open interval [Start, Stop) of sample indices.
type Range struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

// Width returns the number of samples the range covers.
func (r Range) Width() int { return r.Stop - r.Start }

// DataKey describes one logical field of a descriptor. Shape is the shape of
// a single sample's worth of data, without the leading sample axis; a scalar
// field declares [1].
type DataKey struct {
	Shape      []int  `json:"shape"`
	Dtype      Kind   `json:"dtype"`
	DtypeNumpy string `json:"dtype_numpy,omitempty"`
	External   string `json:"external,omitempty"`
	ObjectName string `json:"object_name,omitempty"`
}

// Descriptor names the fields of an event stream. Immutable for the life of
// the stream.
type Descriptor struct {
	DataKeys map[string]DataKey `json:"data_keys"`
	UID      string             `json:"uid"`
}

// ResourceParameters carries the storage-layout details of a stream
// resource. ChunkShape declares a nominal chunk length per dimension and may
// be shorter than the array's rank; missing trailing entries mean one chunk
// per whole dimension. Dataset and SWMR apply to single-file layouts,
// Template to file-sequence layouts.
type ResourceParameters struct {
	Dataset     string `json:"dataset,omitempty"`
	SWMR        bool   `json:"swmr,omitempty"`
	ChunkShape  []int  `json:"chunk_shape"`
	Template    string `json:"template,omitempty"`
	Compression string `json:"compression,omitempty"`
}

// StreamResource declares one family of physical assets backing a single
// data key. Immutable.
type StreamResource struct {
	DataKey      string             `json:"data_key"`
	Mimetype     string             `json:"mimetype"`
	URI          string             `json:"uri"`
	ResourcePath string             `json:"resource_path,omitempty"`
	Parameters   ResourceParameters `json:"parameters"`
	UID          string             `json:"uid"`
}

// FilePath joins the resource location and its relative path into the
// reference readers use to open the backing file.
func (r *StreamResource) FilePath() string {
	if r.ResourcePath == "" {
		return r.URI
	}
	return strings.TrimRight(r.URI, "/") + "/" + strings.TrimLeft(r.ResourcePath, "/")
}

// StreamDatum announces that samples [Indices.Start, Indices.Stop) of a
// resource's stream have been written. SeqNums is the one-based display
// numbering of the same range and plays no part in shape arithmetic.
type StreamDatum struct {
	SeqNums        Range  `json:"seq_nums"`
	Indices        Range  `json:"indices"`
	Descriptor     string `json:"descriptor"`
	StreamResource string `json:"stream_resource"`
	UID            string `json:"uid"`
}
