package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStop() Stop {
	return Stop{
		RecipientName:  "Jane Doe",
		Address:        "1 Main St",
		RecipientPhone: "0400000000",
		SellerName:     "Acme",
		Notes:          "Leave at door",
		StopNumber:     "2",
		Driver:         "Bob",
		Products:       "Widget",
	}
}

func TestLines_Layout(t *testing.T) {
	stop := testStop()
	totals := CountByDriver([]Stop{stop, {Driver: "Bob"}, {Driver: "Alice"}})

	lines := Lines(stop, totals, Options{Date: "01/01/2024", IncludeProduct: true})

	assert.Equal(t, []string{
		"Jane Doe",
		"1 Main St",
		"0400000000",
		"",
		"Sender: Acme",
		"Notes: Leave at door",
		"",
		"Date: 01/01/2024",
		"Order: 2 of 2",
		"Driver: Bob",
		"Product: Widget",
	}, lines)
}

func TestLines_ProductToggleOnlyChangesProductLine(t *testing.T) {
	stop := testStop()
	totals := CountByDriver([]Stop{stop})

	with := Lines(stop, totals, Options{Date: "01/01/2024", IncludeProduct: true})
	without := Lines(stop, totals, Options{Date: "01/01/2024"})

	assert.Len(t, without, len(with))
	last := len(with) - 1
	assert.Equal(t, with[:last], without[:last])
	assert.Equal(t, "Product: Widget", with[last])
	assert.Empty(t, without[last])
}
