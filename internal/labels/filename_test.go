package labels

import (
	"mime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFilename(t *testing.T) {
	tests := []struct {
		upload string
		want   string
	}{
		{"manifest.csv", "manifest.pdf"},
		{"Manifest.CSV", "Manifest.pdf"},
		{"run.2024-01-01.csv", "run.2024-01-01.pdf"},
		{"stops", "stops.pdf"},
		{"stops.xlsx", "stops.xlsx.pdf"},
		{"ab", "ab.pdf"},
		{`C:\Users\ops\manifest.csv`, "manifest.pdf"},
		{"../../etc/manifest.csv", "manifest.pdf"},
		{".csv", "labels.pdf"},
		{"", "labels.pdf"},
	}
	for _, tc := range tests {
		t.Run(tc.upload, func(t *testing.T) {
			assert.Equal(t, tc.want, LabelFilename(tc.upload))
		})
	}
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, `attachment; filename="manifest.pdf"`, ContentDisposition("manifest.pdf"))

	header := ContentDisposition(`we"ird\name.pdf`)
	disposition, params, err := mime.ParseMediaType(header)
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, `we"ird\name.pdf`, params["filename"])

	assert.NotContains(t, ContentDisposition("a\r\nSet-Cookie: x.pdf"), "\n")
}
