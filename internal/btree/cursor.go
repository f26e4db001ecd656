package btree

import "github.com/winterrdog/sqlyte-db/internal/codec"

// Start returns a cursor positioned at the smallest key in the tree (or
// EndOfTable if the tree is empty).
func (t *Tree) Start() (Cursor, error) {
	return t.Find(0)
}

// Value returns the value bytes stored at the cursor's cell. The returned
// slice aliases the pager's page buffer and is only valid until the next
// operation that may evict or mutate that page.
func (t *Tree) Value(cursor Cursor) ([]byte, error) {
	page, err := t.getPage(cursor.PageNum)
	if err != nil {
		return nil, err
	}
	return codec.LeafValue(page, cursor.CellNum), nil
}

// KeyAt returns the key stored at the cursor's cell, along with whether
// that cell actually exists (false for an end-of-table cursor, or one
// whose CellNum is one past the leaf's last occupied cell — the position
// Find returns for a key that isn't present).
func (t *Tree) KeyAt(cursor Cursor) (uint32, bool, error) {
	if cursor.EndOfTable {
		return 0, false, nil
	}
	page, err := t.getPage(cursor.PageNum)
	if err != nil {
		return 0, false, err
	}
	if cursor.CellNum >= codec.LeafNumCells(page) {
		return 0, false, nil
	}
	return codec.LeafKey(page, cursor.CellNum), true, nil
}

// Advance moves the cursor to the next cell in key order, following the
// leaf chain when the current leaf is exhausted.
func (t *Tree) Advance(cursor Cursor) (Cursor, error) {
	page, err := t.getPage(cursor.PageNum)
	if err != nil {
		return Cursor{}, err
	}

	cursor.CellNum++
	if cursor.CellNum < codec.LeafNumCells(page) {
		return cursor, nil
	}

	nextLeaf := codec.NextLeaf(page)
	if nextLeaf == 0 {
		cursor.EndOfTable = true
		return cursor, nil
	}

	cursor.PageNum = nextLeaf
	cursor.CellNum = 0
	return cursor, nil
}
