package shell

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// ErrSyntax is returned for any input line that is not a recognized
// statement shape; its text is printed to stderr verbatim.
var ErrSyntax = errors.New("syntax error. could not parse statement.")

// ErrNegativeID is returned when an insert's id literal parses but is
// negative.
var ErrNegativeID = errors.New("id must be non-negative.")

// ParseStatement tokenizes one line and returns the Statement it denotes.
// Meta-commands (lines beginning with '.') are handled by the caller
// before ParseStatement is ever invoked.
func ParseStatement(line string) (Statement, error) {
	l := newLexer(line)
	first := l.next()
	if first.kind != tokWord {
		return nil, ErrSyntax
	}

	switch first.value {
	case "select":
		if l.next().kind != tokEnd {
			return nil, ErrSyntax
		}
		return SelectStatement{}, nil
	case "insert":
		return parseInsert(l)
	default:
		return nil, ErrSyntax
	}
}

func parseInsert(l *lexer) (Statement, error) {
	idTok := l.next()
	if idTok.kind != tokNumber {
		return nil, ErrSyntax
	}
	id, err := strconv.ParseInt(idTok.value, 10, 64)
	if err != nil {
		return nil, ErrSyntax
	}

	usernameTok := l.next()
	if usernameTok.kind != tokWord && usernameTok.kind != tokNumber {
		return nil, ErrSyntax
	}

	emailTok := l.next()
	if emailTok.kind != tokWord && emailTok.kind != tokNumber {
		return nil, ErrSyntax
	}

	if l.next().kind != tokEnd {
		return nil, ErrSyntax
	}

	if id < 0 {
		return nil, ErrNegativeID
	}
	if id > math.MaxUint32 {
		return nil, ErrSyntax
	}

	return InsertStatement{ID: id, Username: usernameTok.value, Email: emailTok.value}, nil
}
