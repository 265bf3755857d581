package intake

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/viant/afs"
)

// Table is a parsed tabular export: the header in file order plus one map
// per data row.
type Table struct {
	URL     string
	Columns []string
	Rows    []map[string]string
}

// Require verifies the presence of every supplied column. A missing column
// means the upstream export is broken and the run must abort.
func (t *Table) Require(columns ...string) error {
	present := make(map[string]bool, len(t.Columns))
	for _, column := range t.Columns {
		present[column] = true
	}
	for _, column := range columns {
		if !present[column] {
			return fmt.Errorf("missing column %q in %s", column, t.URL)
		}
	}
	return nil
}

// ReadTable downloads and parses a CSV export. The UTF-8 BOM, when present,
// is stripped from the first header cell.
func (s *Service) ReadTable(ctx context.Context, URL string) (*Table, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", URL, err)
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse table %s: %w", URL, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header: %s", URL)
	}

	columns := records[0]
	if len(columns) > 0 {
		columns[0] = strings.TrimPrefix(columns[0], "\ufeff")
	}

	table := &Table{URL: URL, Columns: columns}
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Service reads and normalises form exports. The file system is abstracted
// through afs so that tables can come from file://, mem:// or embedded
// fixtures alike.
type Service struct {
	fs     afs.Service
	layout string
}

// New creates an intake service. A nil fs defaults to the afs service and an
// empty layout to DefaultTimestampLayout.
func New(fs afs.Service, layout string) *Service {
	if fs == nil {
		fs = afs.New()
	}
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	return &Service{fs: fs, layout: layout}
}
