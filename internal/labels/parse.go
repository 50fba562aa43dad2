package labels

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
)

const utf8BOM = "\ufeff"

// ParseStops decodes a CSV manifest. The first row is the header; columns
// are matched by name so their order does not matter.
func ParseStops(r io.Reader) ([]Stop, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoStops
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrMalformedCSV, err)
	}
	header = normalizeHeader(header)
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	dec, err := csvutil.NewDecoder(reader, header...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
	}

	var stops []Stop
	for {
		var stop Stop
		if err := dec.Decode(&stop); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedCSV, len(stops)+1, err)
		}
		stops = append(stops, stop)
	}
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	return stops, nil
}

// normalizeHeader strips a spreadsheet BOM and surrounding whitespace and
// lowercases every column name.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		out[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return out
}

func missingColumns(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
