package journal

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	if err := j.Record("TC-01", "/evidence/TC_01.png", nil); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Record("TC-02", "", errors.New("no permission")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	rows, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(rows))
	}

	// Most recent first.
	if rows[0].Code != "TC-02" || rows[0].OK || rows[0].Reason != "no permission" {
		t.Errorf("Unexpected newest record %+v", rows[0])
	}
	if rows[1].Code != "TC-01" || !rows[1].OK || rows[1].Reason != "" {
		t.Errorf("Unexpected oldest record %+v", rows[1])
	}
	if rows[1].Path != "/evidence/TC_01.png" {
		t.Errorf("Expected saved path, got %q", rows[1].Path)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	j := openTestJournal(t)

	for _, code := range []string{"TC-01", "TC-02", "TC-03"} {
		if err := j.Record(code, "/evidence/"+code+".png", nil); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	rows, err := j.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("Expected limit of 2 records, got %d", len(rows))
	}
}
