package btree

import (
	"fmt"
	"io"

	"github.com/winterrdog/sqlyte-db/internal/codec"
)

// Print writes a recursive, indented dump of the tree to w, starting at the
// root: two spaces of indentation per depth level, leaves rendered as
// "- leaf (size N)" followed by one "- K" line per key, internal nodes as
// "- internal (size N)" followed by each left subtree interleaved with its
// separator key, and finally the rightmost subtree.
func (t *Tree) Print(w io.Writer) error {
	return t.printNode(w, t.RootPageNum, 0)
}

func (t *Tree) printNode(w io.Writer, pageNum uint32, depth int) error {
	page, err := t.getPage(pageNum)
	if err != nil {
		return err
	}
	if codec.GetNodeType(page) == codec.NodeTypeLeaf {
		numCells := codec.LeafNumCells(page)
		printIndent(w, depth)
		fmt.Fprintf(w, "- leaf (size %d)\n", numCells)
		for i := uint32(0); i < numCells; i++ {
			printIndent(w, depth+1)
			fmt.Fprintf(w, "- %d\n", codec.LeafKey(page, i))
		}
		return nil
	}

	numKeys := codec.InternalNumKeys(page)
	printIndent(w, depth)
	fmt.Fprintf(w, "- internal (size %d)\n", numKeys)
	for i := uint32(0); i < numKeys; i++ {
		childPageNum := codec.InternalChild(page, i)
		if err := t.printNode(w, childPageNum, depth+1); err != nil {
			return err
		}
		printIndent(w, depth+1)
		fmt.Fprintf(w, "- key %d\n", codec.InternalKey(page, i))
	}
	rightChild := codec.RightChild(page)
	if rightChild != codec.InvalidPageNum {
		if err := t.printNode(w, rightChild, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func printIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
}
