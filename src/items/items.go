package items

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Item is a single test case loaded from the spreadsheet. Code doubles as
// the capture identifier, Description is display-only.
type Item struct {
	Code        string
	Description string
}

// Load reads {code, description} pairs from the first worksheet of an xlsx
// file. The first row is treated as a header and skipped, and rows with a
// blank code column are dropped.
func Load(path string) ([]Item, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook contains no worksheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}

	var result []Item
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		if len(row) == 0 {
			continue
		}
		code := strings.TrimSpace(row[0])
		if code == "" {
			continue
		}
		desc := ""
		if len(row) > 1 {
			desc = row[1]
		}
		result = append(result, Item{Code: code, Description: desc})
	}

	return result, nil
}
