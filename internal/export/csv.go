package export

import (
	"bytes"
	"encoding/csv"
)

// WriteCSV renders rows as a comma-separated table with a header line.
func WriteCSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	all := append([]Row{header}, rows...)
	for _, r := range all {
		if err := w.Write([]string{r.Date, r.Category, r.Amount, r.Description}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
