// Package pager implements the fixed-capacity page cache that sits between
// the B+-tree and the on-disk database file.
package pager

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	// PageSize is the fixed size, in bytes, of every page on disk and in
	// memory.
	PageSize = 4096

	// TableMaxPages bounds how many pages the pager will hold resident (and
	// permits on disk) at once. There is no page recycling, so this is also
	// the ceiling on database size: TableMaxPages * PageSize.
	TableMaxPages = 100
)

// ErrPageOutOfBounds is returned by Get when pageNum is at or beyond the
// pager's slot capacity (TableMaxPages unless Open was given a smaller one).
var ErrPageOutOfBounds = errors.New("page number out of bounds")

// ErrCorruptFile is returned by Open when the file length is not a whole
// multiple of PageSize.
var ErrCorruptFile = errors.New("db file is not a whole number of pages")

// Page is one 4096-byte unit of storage, resident in memory or on disk.
type Page [PageSize]byte

// Pager owns the file descriptor and a fixed-capacity slot array of page
// buffers. It serves reads with read-through caching and writes with
// write-through flushing; it never evicts a populated slot on its own.
type Pager struct {
	file     *os.File
	slots    []*Page
	numPages uint32
}

// Open opens (or creates) the file at path for read/write and prepares a
// pager with the given slot capacity (clamped to TableMaxPages; 0 or
// negative means "use TableMaxPages").
func Open(path string, capacity int) (*Pager, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	fileLen := info.Size()
	if fileLen%PageSize != 0 {
		file.Close()
		return nil, errors.Wrapf(ErrCorruptFile, "%s: length %d is not a multiple of %d", path, fileLen, PageSize)
	}

	if capacity <= 0 || capacity > TableMaxPages {
		capacity = TableMaxPages
	}

	return &Pager{
		file:     file,
		slots:    make([]*Page, capacity),
		numPages: uint32(fileLen / PageSize),
	}, nil
}

// NumPages returns the number of pages the pager currently knows about,
// whether or not every one of them has been flushed to disk yet.
func (p *Pager) NumPages() uint32 {
	return p.numPages
}

// Get returns the page buffer for pageNum, reading it from disk on first
// access (or zero-initializing it, if it doesn't exist on disk yet).
func (p *Pager) Get(pageNum uint32) (*Page, error) {
	if int(pageNum) >= len(p.slots) {
		return nil, errors.Wrapf(ErrPageOutOfBounds, "page %d (capacity %d)", pageNum, len(p.slots))
	}

	if page := p.slots[pageNum]; page != nil {
		return page, nil
	}

	page := &Page{}
	if pageNum < p.numPages {
		offset := int64(pageNum) * PageSize
		n, err := p.file.ReadAt(page[:], offset)
		if err != nil && err != io.EOF {
			return nil, errors.Wrapf(err, "read page %d", pageNum)
		}
		_ = n // a short read at EOF is tolerated; the buffer is pre-zeroed
	}

	p.slots[pageNum] = page
	if pageNum >= p.numPages {
		p.numPages = pageNum + 1
	}

	return page, nil
}

// Flush writes the page at pageNum to disk. The slot must already be
// populated (i.e. Get must have been called for this page number).
func (p *Pager) Flush(pageNum uint32) error {
	if int(pageNum) >= len(p.slots) || p.slots[pageNum] == nil {
		return errors.Errorf("flush: page %d is not populated", pageNum)
	}

	offset := int64(pageNum) * PageSize
	n, err := p.file.WriteAt(p.slots[pageNum][:], offset)
	if err != nil {
		return errors.Wrapf(err, "write page %d", pageNum)
	}
	if n != PageSize {
		return errors.Errorf("short write on page %d: wrote %d of %d bytes", pageNum, n, PageSize)
	}

	return nil
}

// UnusedPageNum returns the next page number that has never been allocated.
// Pages are only ever appended; there is no free list.
func (p *Pager) UnusedPageNum() uint32 {
	return p.numPages
}

// Close flushes every populated slot and closes the underlying file.
func (p *Pager) Close() error {
	for pageNum, page := range p.slots {
		if page == nil {
			continue
		}
		if err := p.Flush(uint32(pageNum)); err != nil {
			return err
		}
	}
	return errors.Wrap(p.file.Close(), "close db file")
}
