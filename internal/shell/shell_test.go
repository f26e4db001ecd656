package shell

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/winterrdog/sqlyte-db/internal/storage"
)

func newTestTable(t *testing.T) *storage.Table {
	t.Helper()
	table, err := storage.Open(filepath.Join(t.TempDir(), "test.db"), 10)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	return table
}

func runSession(t *testing.T, table *storage.Table, lines ...string) (stdout, stderr string) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out, errOut bytes.Buffer
	if err := Run(in, &out, &errOut, table); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), errOut.String()
}

func TestSingleRowRoundTrip(t *testing.T) {
	table := newTestTable(t)
	out, errOut := runSession(t, table,
		"insert 1 user1 person1@example.com",
		"select",
		".exit",
	)
	if errOut != "" {
		t.Fatalf("unexpected stderr: %q", errOut)
	}

	want := "lyt-db> executed.\n" +
		"lyt-db> ( 1, user1, person1@example.com )\n" +
		"executed.\n" +
		"lyt-db> "
	if out != want {
		t.Fatalf("stdout =\n%q\nwant\n%q", out, want)
	}
}

func TestNegativeIDRejected(t *testing.T) {
	table := newTestTable(t)
	out, errOut := runSession(t, table,
		"insert -1 cstack foo@bar.com",
		"select",
	)
	if errOut != "" {
		t.Fatalf("unexpected stderr: %q", errOut)
	}

	want := "lyt-db> id must be non-negative.\n" +
		"lyt-db> executed.\n" +
		"lyt-db> "
	if out != want {
		t.Fatalf("stdout =\n%q\nwant\n%q", out, want)
	}
}

func TestDuplicateKeyRejected(t *testing.T) {
	table := newTestTable(t)
	out, _ := runSession(t, table,
		"insert 1 u p@x",
		"insert 1 u p@x",
		"select",
		".exit",
	)

	want := "lyt-db> executed.\n" +
		"lyt-db> error: duplicate key.\n" +
		"lyt-db> ( 1, u, p@x )\n" +
		"executed.\n" +
		"lyt-db> "
	if out != want {
		t.Fatalf("stdout =\n%q\nwant\n%q", out, want)
	}
}

func TestUnrecognizedMetaCommandGoesToStderr(t *testing.T) {
	table := newTestTable(t)
	_, errOut := runSession(t, table, ".bogus")

	want := "unrecognized command '.bogus'\n"
	if errOut != want {
		t.Fatalf("stderr = %q, want %q", errOut, want)
	}
}

func TestSyntaxErrorGoesToStderr(t *testing.T) {
	table := newTestTable(t)
	_, errOut := runSession(t, table, "frobnicate 1 2 3")

	want := "syntax error. could not parse statement.\n"
	if errOut != want {
		t.Fatalf("stderr = %q, want %q", errOut, want)
	}
}

func TestConstantsSnapshot(t *testing.T) {
	table := newTestTable(t)
	out, _ := runSession(t, table, ".constants")

	for _, line := range []string{
		"constants:",
		"ROW_SIZE: 293",
		"COMMON_NODE_HEADER_SIZE: 6",
		"LEAF_NODE_HEADER_SIZE: 14",
		"LEAF_NODE_CELL_SIZE: 297",
		"LEAF_NODE_SPACE_FOR_CELLS: 4082",
		"LEAF_NODE_MAX_CELLS: 13",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q; got:\n%s", line, out)
		}
	}
}

func TestDurabilityAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	table, err := storage.Open(path, 10)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	runSession(t, table, "insert 1 a a@x.com", "insert 2 b b@x.com", "insert 3 c c@x.com", ".exit")

	reopened, err := storage.Open(path, 10)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	out, _ := runSession(t, reopened, "select", ".exit")

	want := "lyt-db> ( 1, a, a@x.com )\n" +
		"( 2, b, b@x.com )\n" +
		"( 3, c, c@x.com )\n" +
		"executed.\n" +
		"lyt-db> "
	if out != want {
		t.Fatalf("stdout after reopen =\n%q\nwant\n%q", out, want)
	}
}
