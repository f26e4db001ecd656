package storage

import (
	"io"

	"github.com/pkg/errors"

	"github.com/winterrdog/sqlyte-db/internal/btree"
	"github.com/winterrdog/sqlyte-db/internal/codec"
	"github.com/winterrdog/sqlyte-db/internal/pager"
)

// Re-exported sentinels let callers branch on storage errors without
// reaching into the lower layers or matching error strings.
var (
	ErrDuplicateKey    = btree.ErrDuplicateKey
	ErrPageOutOfBounds = pager.ErrPageOutOfBounds
	ErrCorruptFile     = pager.ErrCorruptFile
	ErrInvalidPage     = btree.ErrInvalidChild
)

// Table is a thin holder of a root page number and the Pager backing it;
// it is the single entry point the shell talks to.
type Table struct {
	pager *pager.Pager
	tree  *btree.Tree
}

// Open opens (creating if necessary) the database file at path, with a
// Pager slot capacity of cachePages. If the file is new, page 0 is
// initialized as an empty leaf root.
func Open(path string, cachePages int) (*Table, error) {
	p, err := pager.Open(path, cachePages)
	if err != nil {
		return nil, err
	}

	if p.NumPages() == 0 {
		root, err := p.Get(0)
		if err != nil {
			return nil, err
		}
		codec.InitLeaf(root[:])
		codec.SetIsRoot(root[:], true)
	}

	return &Table{pager: p, tree: btree.New(p, 0)}, nil
}

// Insert adds row to the table, or returns ErrDuplicateKey if row.ID is
// already present.
func (t *Table) Insert(row Row) error {
	cursor, err := t.tree.Find(row.ID)
	if err != nil {
		return err
	}

	existingKey, exists, err := t.tree.KeyAt(cursor)
	if err != nil {
		return err
	}
	if exists && existingKey == row.ID {
		return ErrDuplicateKey
	}

	var buf [codec.RowSize]byte
	row.Serialize(buf[:])
	return t.tree.LeafInsert(cursor, row.ID, buf[:])
}

// SelectAll calls visit once per row, in ascending id order, stopping
// early if visit returns an error.
func (t *Table) SelectAll(visit func(Row) error) error {
	cursor, err := t.tree.Start()
	if err != nil {
		return err
	}

	for !cursor.EndOfTable {
		value, err := t.tree.Value(cursor)
		if err != nil {
			return err
		}
		if err := visit(DeserializeRow(value)); err != nil {
			return err
		}

		cursor, err = t.tree.Advance(cursor)
		if err != nil {
			return err
		}
	}
	return nil
}

// PrintTree writes a debug dump of the underlying B+-tree; see
// btree.Tree.Print for the format.
func (t *Table) PrintTree(w io.Writer) error {
	return t.tree.Print(w)
}

// Close flushes every populated page and releases the file descriptor.
func (t *Table) Close() error {
	if err := t.pager.Close(); err != nil {
		return errors.Wrap(err, "storage: close")
	}
	return nil
}
