package items

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	wb := excelize.NewFile()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("Failed to build cell name: %v", err)
			}
			if err := wb.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatalf("Failed to set cell %s: %v", cell, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "cases.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code", "Description"},
		{"TC-01", "Login test"},
		{"TC-02", "Logout test"},
	})

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(loaded))
	}
	if loaded[0].Code != "TC-01" || loaded[0].Description != "Login test" {
		t.Errorf("Unexpected first item: %+v", loaded[0])
	}
	if loaded[1].Code != "TC-02" {
		t.Errorf("Unexpected second item: %+v", loaded[1])
	}
}

func TestLoadSkipsBlankCodes(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code", "Description"},
		{"  ", "no code"},
		{"TC-03", "has code"},
		{"", "also no code"},
	})

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(loaded))
	}
	if loaded[0].Code != "TC-03" {
		t.Errorf("Expected TC-03, got %q", loaded[0].Code)
	}
}

func TestLoadTrimsCodeWhitespace(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code", "Description"},
		{" TC-04 ", "padded"},
	})

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Code != "TC-04" {
		t.Fatalf("Expected trimmed TC-04, got %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Expected error for missing workbook")
	}
}

func TestLoadDescriptionColumnOptional(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code"},
		{"TC-05"},
	})

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Code != "TC-05" || loaded[0].Description != "" {
		t.Fatalf("Expected TC-05 with empty description, got %+v", loaded)
	}
}
