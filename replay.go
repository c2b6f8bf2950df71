package consolidate

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// Document names from the event model that the engine tracks. Runs carry
// other documents (start, stop, event) which replay skips.
const (
	NameDescriptor     = "descriptor"
	NameStreamResource = "stream_resource"
	NameStreamDatum    = "stream_datum"
)

// Run aggregates the documents of one acquisition: descriptors, stream
// resources, and one consolidator per externally-backed stream. State lives
// only in memory; rebuilding after a restart means replaying the document
// log again. Use NewRun.
type Run struct {
	descriptors map[string]*Descriptor
	resources   map[string]*StreamResource
	streams     map[string]Consolidator
	order       []string
}

func NewRun() *Run {
	return &Run{
		descriptors: map[string]*Descriptor{},
		resources:   map[string]*StreamResource{},
		streams:     map[string]Consolidator{},
	}
}

// Stream returns the consolidator for a stream resource uid. A resource with
// no consumed datum yet has no consolidator.
func (r *Run) Stream(uid string) (Consolidator, bool) {
	c, ok := r.streams[uid]
	return c, ok
}

// Streams returns stream resource uids in arrival order.
func (r *Run) Streams() []string {
	return append([]string(nil), r.order...)
}

// Dispatch routes one named document. A consolidator is built on the first
// stream datum of each resource, when both the resource and its descriptor
// are known. Unknown document names are ignored.
func (r *Run) Dispatch(name string, doc json.RawMessage) error {
	switch name {
	case NameDescriptor:
		d := &Descriptor{}
		if err := json.Unmarshal(doc, d); err != nil {
			return fmt.Errorf("decoding descriptor: %w", err)
		}
		r.descriptors[d.UID] = d

	case NameStreamResource:
		res := &StreamResource{}
		if err := json.Unmarshal(doc, res); err != nil {
			return fmt.Errorf("decoding stream resource: %w", err)
		}
		if _, ok := r.resources[res.UID]; !ok {
			r.order = append(r.order, res.UID)
		}
		r.resources[res.UID] = res

	case NameStreamDatum:
		sd := &StreamDatum{}
		if err := json.Unmarshal(doc, sd); err != nil {
			return fmt.Errorf("decoding stream datum: %w", err)
		}
		cons, ok := r.streams[sd.StreamResource]
		if !ok {
			res, ok := r.resources[sd.StreamResource]
			if !ok {
				return &ConfigurationError{
					Reason: fmt.Sprintf("stream datum %q references unknown stream resource %q", sd.UID, sd.StreamResource),
				}
			}
			desc, ok := r.descriptors[sd.Descriptor]
			if !ok {
				return &ConfigurationError{
					Reason: fmt.Sprintf("stream datum %q references unknown descriptor %q", sd.UID, sd.Descriptor),
				}
			}
			var err error
			if cons, err = New(res, desc); err != nil {
				return err
			}
			r.streams[sd.StreamResource] = cons
		}
		return cons.Consume(sd)
	}
	return nil
}

// Replay rebuilds run state from a JSONL document log, one
// {"name": ..., "doc": {...}} object per line. Blank lines are skipped.
func Replay(rd io.Reader) (*Run, error) {
	run := NewRun()
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		name := gjson.GetBytes(raw, "name")
		doc := gjson.GetBytes(raw, "doc")
		if !name.Exists() || !doc.Exists() {
			return nil, fmt.Errorf("line %d: expected a {name, doc} pair", line)
		}
		if err := run.Dispatch(name.String(), json.RawMessage(doc.Raw)); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return run, nil
}
