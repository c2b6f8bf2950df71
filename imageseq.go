package consolidate

import (
	"fmt"
	"strings"
)

// ImageSeqConsolidator tracks a stream stored as one image file per sample,
// named by stamping the absolute sample index into the resource's filename
// template. File count follows the leading axis only: each file holds the
// sample's whole unit shape, however many sub-frames that is.
type ImageSeqConsolidator struct {
	consolidator

	template string
}

var _ Consolidator = (*ImageSeqConsolidator)(nil)

func NewImageSeqConsolidator(res *StreamResource, desc *Descriptor) (*ImageSeqConsolidator, error) {
	base, err := newConsolidator(res, desc)
	if err != nil {
		return nil, err
	}
	tmpl, err := translateTemplate(res.Parameters.Template)
	if err != nil {
		return nil, err
	}
	c := &ImageSeqConsolidator{consolidator: base, template: tmpl}
	c.record = c.recordAssets
	return c, nil
}

// recordAssets appends one single-sample asset per newly covered index.
func (c *ImageSeqConsolidator) recordAssets(start, stop int) {
	for i := start; i < stop; i++ {
		name := fmt.Sprintf(c.template, i)
		c.assets = append(c.assets, Asset{
			URI:   strings.TrimRight(c.resource.URI, "/") + "/" + name,
			Range: Range{Start: i, Stop: i + 1},
		})
	}
}

// translateTemplate converts a python-style filename template such as
// "img_{:06d}.tiff" into the fmt form used to stamp sample indices. Exactly
// one integer placeholder is required.
func translateTemplate(t string) (string, error) {
	if t == "" {
		return "", &ConfigurationError{Reason: "image sequence resource declares no filename template"}
	}
	var b strings.Builder
	placeholders := 0
	for i := 0; i < len(t); i++ {
		ch := t[i]
		if ch == '%' {
			b.WriteString("%%")
			continue
		}
		if ch != '{' {
			b.WriteByte(ch)
			continue
		}
		end := strings.IndexByte(t[i:], '}')
		if end < 0 {
			return "", &ConfigurationError{Reason: fmt.Sprintf("unterminated placeholder in template %q", t)}
		}
		verb, err := placeholderVerb(t, t[i+1:i+end])
		if err != nil {
			return "", err
		}
		b.WriteString(verb)
		placeholders++
		i += end
	}
	if placeholders != 1 {
		return "", &ConfigurationError{
			Reason: fmt.Sprintf("template %q must contain exactly one index placeholder", t),
		}
	}
	return b.String(), nil
}

// placeholderVerb maps "{}", "{:d}" and "{:06d}" style placeholders to fmt
// integer verbs.
func placeholderVerb(tmpl, spec string) (string, error) {
	body := strings.TrimPrefix(spec, ":")
	if body == "" || body == "d" {
		return "%d", nil
	}
	if strings.HasSuffix(body, "d") && isDigits(body[:len(body)-1]) {
		return "%" + body, nil
	}
	return "", &ConfigurationError{
		Reason: fmt.Sprintf("unsupported placeholder {%s} in template %q", spec, tmpl),
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
