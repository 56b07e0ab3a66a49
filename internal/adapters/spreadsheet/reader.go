// Package spreadsheet converts uploaded legacy registry workbooks into the
// row records the import engine consumes.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/hostalqori/hotel_management_app/internal/dto"
	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("workbook has no sheets")
var ErrNoHeader = errors.New("workbook has no header row")

// ReadRows parses an xlsx payload into row records. The first sheet is the
// registry; the first non-empty row is the header. Header labels are trimmed
// and upper-cased so they line up with the well-known column names, and blank
// rows are dropped.
func ReadRows(payload []byte) ([]dto.RowRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}
	return recordsFromRows(rows)
}

func recordsFromRows(rows [][]string) ([]dto.RowRecord, error) {
	var header []string
	records := []dto.RowRecord{}
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if header == nil {
			header = make([]string, len(row))
			for i, cell := range row {
				header[i] = strings.ToUpper(strings.TrimSpace(cell))
			}
			continue
		}
		record := dto.RowRecord{}
		for i, label := range header {
			if label == "" {
				continue
			}
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			record[label] = value
		}
		records = append(records, record)
	}
	if header == nil {
		return nil, ErrNoHeader
	}
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
