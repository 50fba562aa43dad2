package labels

import "errors"

var (
	// ErrMissingColumn reports a CSV header without one of the required stop columns.
	ErrMissingColumn = errors.New("labels: missing required column")
	// ErrMalformedCSV reports a CSV body that could not be tokenised or decoded.
	ErrMalformedCSV = errors.New("labels: malformed csv")
	// ErrNoStops reports an upload with no data rows.
	ErrNoStops = errors.New("labels: no stops in upload")
)
