package labels

import (
	"bytes"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/require"
)

const manifestHeader = "recipient_name,address,recipient_phone,seller_name,notes,stop_number,driver,products\n"

const sampleManifest = manifestHeader +
	"Jane Doe,1 Main St,0400000000,Acme,Leave at door,1,Bob,Widget\n" +
	"John Roe,2 High St,0400000001,Acme,Ring bell,1,Alice,Gadget\n" +
	"Ann Poe,3 Low Rd,0400000002,Globex,,2,Bob,Sprocket\n" +
	"Sam Loe,4 Side Ave,0400000003,Globex,Back gate,3,Bob,\n"

// pdfPages extracts the plain text of every page in order.
func pdfPages(t *testing.T, data []byte) []string {
	t.Helper()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		text, err := reader.Page(i).GetPlainText(nil)
		require.NoError(t, err)
		pages = append(pages, text)
	}
	return pages
}
