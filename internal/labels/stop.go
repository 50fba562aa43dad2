// Package labels turns a CSV manifest of delivery stops into a PDF of 4x6
// shipping labels and serves the conversion over HTTP.
package labels

// Stop is one delivery destination, decoded from a single CSV data row.
// Every field is kept as opaque text.
type Stop struct {
	RecipientName  string `csv:"recipient_name"`
	Address        string `csv:"address"`
	RecipientPhone string `csv:"recipient_phone"`
	SellerName     string `csv:"seller_name"`
	Notes          string `csv:"notes"`
	StopNumber     string `csv:"stop_number"`
	Driver         string `csv:"driver"`
	Products       string `csv:"products,omitempty"`
}

// requiredColumns lists the header names every manifest must carry.
// products is optional.
var requiredColumns = []string{
	"recipient_name",
	"address",
	"recipient_phone",
	"seller_name",
	"notes",
	"stop_number",
	"driver",
}
