// Package storage implements the fixed single-table schema on top of
// package btree: Row serialization, and Table, the thin open/insert/scan/
// close holder that glues a Pager and a Tree together.
package storage

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/winterrdog/sqlyte-db/internal/codec"
)

// rowSize must match codec.RowSize, which sizes the leaf cell layout; a
// mismatch in either direction is a compile error, not a runtime one.
var (
	_ [codec.RowSize - rowSize]struct{}
	_ [rowSize - codec.RowSize]struct{}
)

const (
	// UsernameSize and EmailSize are the user-visible capacities; the
	// serialized fields are one byte wider to hold the trailing NUL.
	UsernameSize = 32
	EmailSize    = 255

	idFieldSize       = 4
	usernameFieldSize = UsernameSize + 1
	emailFieldSize    = EmailSize + 1

	idOffset       = 0
	usernameOffset = idOffset + idFieldSize
	emailOffset    = usernameOffset + usernameFieldSize
	rowSize        = emailOffset + emailFieldSize
)

// ErrStringTooLong is returned by NewRow when username or email exceeds
// its capacity.
var ErrStringTooLong = errors.New("string is too long")

// Row is the one and only schema this database understands.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// NewRow validates field lengths and returns a Row, or an error if username
// or email exceeds its capacity.
func NewRow(id uint32, username, email string) (Row, error) {
	if len(username) > UsernameSize {
		return Row{}, ErrStringTooLong
	}
	if len(email) > EmailSize {
		return Row{}, ErrStringTooLong
	}
	return Row{ID: id, Username: username, Email: email}, nil
}

// Serialize writes r into dst, which must be at least rowSize bytes (a
// leaf cell's value area). Character fields are NUL-padded.
func (r Row) Serialize(dst []byte) {
	_ = dst[rowSize-1]
	for i := range dst[:rowSize] {
		dst[i] = 0
	}
	binary.LittleEndian.PutUint32(dst[idOffset:], r.ID)
	copy(dst[usernameOffset:usernameOffset+usernameFieldSize], r.Username)
	copy(dst[emailOffset:emailOffset+emailFieldSize], r.Email)
}

// DeserializeRow reads a Row back out of a leaf cell's value area.
func DeserializeRow(src []byte) Row {
	id := binary.LittleEndian.Uint32(src[idOffset:])
	username := cString(src[usernameOffset : usernameOffset+usernameFieldSize])
	email := cString(src[emailOffset : emailOffset+emailFieldSize])
	return Row{ID: id, Username: username, Email: email}
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
