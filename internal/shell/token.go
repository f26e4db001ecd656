package shell

// tokenKind discriminates the handful of lexical shapes the command
// grammar needs: a keyword/bare word, a (possibly negative) integer
// literal, end of input, or a single invalid (control) character.
type tokenKind int

const (
	tokEnd tokenKind = iota
	tokWord
	tokNumber
	tokInvalid
)

type token struct {
	kind  tokenKind
	value string
}
