package labels

import "fmt"

// Options are the per-request rendering choices.
type Options struct {
	// Date is printed verbatim on the Date line.
	Date string
	// IncludeProduct adds the Product line to every label.
	IncludeProduct bool
}

// Lines composes the text block for one label. The slice always has the
// same length; the product slot is blank when IncludeProduct is off.
func Lines(stop Stop, totals DriverTotals, opts Options) []string {
	product := ""
	if opts.IncludeProduct {
		product = "Product: " + stop.Products
	}
	return []string{
		stop.RecipientName,
		stop.Address,
		stop.RecipientPhone,
		"",
		"Sender: " + stop.SellerName,
		"Notes: " + stop.Notes,
		"",
		"Date: " + opts.Date,
		fmt.Sprintf("Order: %s of %d", stop.StopNumber, totals.Total(stop.Driver)),
		"Driver: " + stop.Driver,
		product,
	}
}
