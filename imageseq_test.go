package consolidate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateTemplate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"img_{:06d}.tiff", "img_%06d.tiff", false},
		{"img_{:06d}.jpeg", "img_%06d.jpeg", false},
		{"frame_{:d}.tiff", "frame_%d.tiff", false},
		{"frame_{}.tiff", "frame_%d.tiff", false},
		{"{:4d}.tiff", "%4d.tiff", false},
		{"100%_{}.tiff", "100%%_%d.tiff", false},
		{"", "", true},               // no template at all
		{"img.tiff", "", true},       // no placeholder
		{"{}_{}.tiff", "", true},     // two placeholders
		{"img_{:s}.tiff", "", true},  // non-integer placeholder
		{"img_{:06d.tiff", "", true}, // unterminated
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := translateTemplate(tt.in)
			if tt.wantErr {
				var confErr *ConfigurationError
				require.ErrorAs(t, err, &confErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateStamping(t *testing.T) {
	t.Parallel()
	tmpl, err := translateTemplate("img_{:06d}.tiff")
	require.NoError(t, err)
	assert.Equal(t, "img_000000.tiff", fmt.Sprintf(tmpl, 0))
	assert.Equal(t, "img_000042.tiff", fmt.Sprintf(tmpl, 42))
	assert.Equal(t, "img_1000000.tiff", fmt.Sprintf(tmpl, 1000000))
}
