package storage

import (
	"path/filepath"
	"testing"
)

func TestRowSerializeRoundTrip(t *testing.T) {
	row, err := NewRow(7, "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("NewRow: %v", err)
	}

	var buf [rowSize]byte
	row.Serialize(buf[:])

	got := DeserializeRow(buf[:])
	if got != row {
		t.Fatalf("round trip = %+v, want %+v", got, row)
	}
}

func TestNewRowRejectsOversizedFields(t *testing.T) {
	longUsername := make([]byte, UsernameSize+1)
	for i := range longUsername {
		longUsername[i] = 'a'
	}
	if _, err := NewRow(1, string(longUsername), "x@y.com"); err != ErrStringTooLong {
		t.Fatalf("NewRow with oversized username: got %v, want ErrStringTooLong", err)
	}

	longEmail := make([]byte, EmailSize+1)
	for i := range longEmail {
		longEmail[i] = 'e'
	}
	if _, err := NewRow(1, "bob", string(longEmail)); err != ErrStringTooLong {
		t.Fatalf("NewRow with oversized email: got %v, want ErrStringTooLong", err)
	}
}

func TestTableInsertSelectAndDuplicateRejection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	table, err := Open(path, 10)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	rows := []Row{}
	for _, id := range []uint32{3, 1, 2} {
		row, err := NewRow(id, "user", "user@example.com")
		if err != nil {
			t.Fatalf("NewRow(%d): %v", id, err)
		}
		if err := table.Insert(row); err != nil {
			t.Fatalf("Insert(%d): %v", id, err)
		}
		rows = append(rows, row)
	}

	dup, _ := NewRow(1, "user", "user@example.com")
	if err := table.Insert(dup); err != ErrDuplicateKey {
		t.Fatalf("duplicate Insert: got %v, want ErrDuplicateKey", err)
	}

	var got []Row
	if err := table.SelectAll(func(r Row) error {
		got = append(got, r)
		return nil
	}); err != nil {
		t.Fatalf("SelectAll: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("SelectAll returned %d rows, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatalf("rows not in ascending order: %+v", got)
		}
	}

	if err := table.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path, 10)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	var reopenedRows []Row
	if err := reopened.SelectAll(func(r Row) error {
		reopenedRows = append(reopenedRows, r)
		return nil
	}); err != nil {
		t.Fatalf("SelectAll after reopen: %v", err)
	}

	if len(reopenedRows) != len(got) {
		t.Fatalf("reopened select returned %d rows, want %d", len(reopenedRows), len(got))
	}
	for i := range got {
		if reopenedRows[i] != got[i] {
			t.Fatalf("reopened row %d = %+v, want %+v", i, reopenedRows[i], got[i])
		}
	}
}
