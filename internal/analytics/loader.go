package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
)

// requiredColumns are the columns every event CSV must provide, in the
// order they are written back out by WriteCSV.
var requiredColumns = []string{"date", "user_id", "variant", "channel", "segment", "step"}

// dateLayouts are tried in order when canonicalizing the date column.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parseDate(value string) (string, bool) {
	v := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// Load parses a CSV event source into a normalized event table.
//
// The header must contain the six required columns (extra columns are
// ignored). Dates are reformatted to YYYY-MM-DD; variant, channel, segment,
// and step are lowercased and trimmed. Rows whose step is not a recognized
// funnel step are silently dropped: noisy logs routinely carry extra step
// values and they must not fail the load.
//
// Returns *SchemaError when required columns are missing and
// *DateParseError when any date value is unparseable; either failure aborts
// the whole load.
func Load(r io.Reader) (domain.EventTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[normalize(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	table := make(domain.EventTable, 0, 64)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		date, ok := parseDate(record[index["date"]])
		if !ok {
			return nil, &DateParseError{Value: record[index["date"]], Line: line}
		}

		step := normalize(record[index["step"]])
		if !domain.IsValidStep(step) {
			continue
		}

		table = append(table, domain.Event{
			Date:    date,
			UserID:  strings.TrimSpace(record[index["user_id"]]),
			Variant: normalize(record[index["variant"]]),
			Channel: normalize(record[index["channel"]]),
			Segment: normalize(record[index["segment"]]),
			Step:    domain.Step(step),
		})
	}

	return table, nil
}

// WriteCSV serializes a normalized event table back to CSV with the
// canonical column order. Used to persist the current active dataset.
func WriteCSV(w io.Writer, table domain.EventTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(requiredColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range table {
		row := []string{e.Date, e.UserID, e.Variant, e.Channel, e.Segment, string(e.Step)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
