package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
)

// HeaderResolver maps raw column-header text to a canonical header.
type HeaderResolver func(v any) (leaveimport.Header, bool)

// Reader turns uploaded xlsx/csv files into raw import rows. Header text is
// resolved once, then every data row is projected through the resulting
// column map.
type Reader struct {
	resolve HeaderResolver
}

func NewReader(resolve HeaderResolver) *Reader {
	return &Reader{resolve: resolve}
}

// Read parses the upload and returns the raw rows plus the spreadsheet row
// number of the first data row.
func (r *Reader) Read(file io.Reader, filename string) ([]leaveimport.RawImportRow, int, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return r.readExcel(file)
	case ".csv":
		return r.readCSV(file)
	default:
		return nil, 0, leaveimport.ErrUnsupportedFileType
	}
}

func (r *Reader) readExcel(file io.Reader) ([]leaveimport.RawImportRow, int, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	return r.projectRows(rows)
}

func (r *Reader) readCSV(file io.Reader) ([]leaveimport.RawImportRow, int, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read csv file: %w", err)
	}
	return r.projectRows(rows)
}

func (r *Reader) projectRows(rows [][]string) ([]leaveimport.RawImportRow, int, error) {
	if len(rows) < 2 {
		return nil, 0, leaveimport.ErrNoDataRows
	}

	columns := make(map[int]leaveimport.Header)
	found := make(map[leaveimport.Header]bool)
	for i, cell := range rows[0] {
		if h, ok := r.resolve(cell); ok {
			columns[i] = h
			found[h] = true
		}
	}
	for _, h := range leaveimport.RequiredHeaders {
		if !found[h] {
			return nil, 0, leaveimport.ErrMissingRequiredHeaders
		}
	}

	out := make([]leaveimport.RawImportRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw := make(leaveimport.RawImportRow, len(columns))
		for col, h := range columns {
			if col < len(row) {
				raw[h] = row[col]
			} else {
				raw[h] = nil
			}
		}
		out = append(out, raw)
	}

	// Header occupies row 1, data starts at row 2.
	return out, 2, nil
}
