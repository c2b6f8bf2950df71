package consolidate

import "fmt"

// SequencingError reports a stream datum whose index range does not begin at
// the consolidator's current extent: a gap, an overlap, or a regression.
// Never retriable; redelivering the same range repeats the error.
type SequencingError struct {
	Expected int
	Range    Range
}

func (e *SequencingError) Error() string {
	return fmt.Sprintf("stream datum range [%d,%d) does not start at current extent %d",
		e.Range.Start, e.Range.Stop, e.Expected)
}

// UnsupportedFormatError reports a stream resource mimetype with no
// registered storage layout. Fatal at stream-open time.
type UnsupportedFormatError struct {
	Mimetype string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("no consolidator registered for mimetype %q", e.Mimetype)
}

// ConfigurationError reports a malformed descriptor or stream resource
// declaration, caught at construction time.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }
