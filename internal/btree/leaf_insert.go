package btree

import "github.com/winterrdog/sqlyte-db/internal/codec"

// LeafInsert writes (key, value) into the leaf at cursor.PageNum at
// position cursor.CellNum, shifting later cells right, splitting the leaf
// first if it is already full. Callers MUST have already checked for a
// duplicate key at the cursor position; LeafInsert does not check again.
func (t *Tree) LeafInsert(cursor Cursor, key uint32, value []byte) error {
	page, err := t.getPage(cursor.PageNum)
	if err != nil {
		return err
	}

	numCells := codec.LeafNumCells(page)
	if numCells >= codec.LeafNodeMaxCells {
		return t.leafSplitAndInsert(cursor, key, value)
	}

	for i := numCells; i > cursor.CellNum; i-- {
		copy(codec.LeafCell(page, i), codec.LeafCell(page, i-1))
	}

	codec.SetLeafKey(page, cursor.CellNum, key)
	copy(codec.LeafValue(page, cursor.CellNum), value)
	codec.SetLeafNumCells(page, numCells+1)

	return nil
}
