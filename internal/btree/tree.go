// Package btree implements the on-disk B+-tree that indexes rows by their
// u32 primary key: search, leaf/internal insert and split, leaf chaining
// for ordered scans, and a debug tree dump. It is built directly on package
// pager (page storage) and package codec (byte-offset field access) — no
// node is ever materialized as a decoded struct.
package btree

import (
	"github.com/pkg/errors"

	"github.com/winterrdog/sqlyte-db/internal/pager"
)

// ErrDuplicateKey reports that a key already exists. Nothing in this package
// returns it (LeafInsert does not check for duplicates); package storage's
// Table.Insert returns it after probing the cursor with KeyAt.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrInvalidChild is a fatal error: an internal node pointed at a child
// page numbered codec.InvalidPageNum.
var ErrInvalidChild = errors.New("attempted to dereference invalid child page")

// Cursor identifies a specific leaf cell, or the position one past the
// last cell in the tree.
type Cursor struct {
	PageNum    uint32
	CellNum    uint32
	EndOfTable bool
}

// Tree is a B+-tree keyed on a u32 primary key, backed by a Pager. The root
// always lives at page 0; RootPageNum is tracked explicitly anyway to match
// the interface spec.md describes; it never changes in this implementation.
type Tree struct {
	pager       *pager.Pager
	RootPageNum uint32
}

// New wraps an already-open Pager. The caller is responsible for making
// sure page 0 has been initialized as an (empty) leaf root the first time
// a database file is created; see package storage's Table.Open.
func New(p *pager.Pager, rootPageNum uint32) *Tree {
	return &Tree{pager: p, RootPageNum: rootPageNum}
}

// getPage fetches a page from the pager, wrapping its error with page-level
// context so fatal I/O errors are diagnosable.
func (t *Tree) getPage(pageNum uint32) ([]byte, error) {
	page, err := t.pager.Get(pageNum)
	if err != nil {
		return nil, errors.Wrapf(err, "btree: get page %d", pageNum)
	}
	return page[:], nil
}

// allocatePage returns the page number of a freshly allocated, still
// zero-valued page.
func (t *Tree) allocatePage() (uint32, []byte, error) {
	pageNum := t.pager.UnusedPageNum()
	page, err := t.getPage(pageNum)
	if err != nil {
		return 0, nil, err
	}
	return pageNum, page, nil
}
