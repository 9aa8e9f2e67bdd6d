package syntax

import "fmt"

// ErrorKind classifies an advisory scan error.
type ErrorKind int

const (
	// ErrUnmatchedClosing is a closing bracket or brace with no open
	// counterpart, reported at the closing position.
	ErrUnmatchedClosing ErrorKind = iota
	// ErrUnclosedOpening is an opening bracket or brace that is never
	// closed, reported at the opening position.
	ErrUnclosedOpening
	// ErrMalformedWeight is a weight annotation whose numeric prefix does
	// not parse. The annotation degrades to weight 1.0.
	ErrMalformedWeight
)

// ScanError is an advisory error produced while scanning. It is data for the
// UI to optionally render, never a failure: scanning always produces output.
type ScanError struct {
	Kind ErrorKind
	Pos  int // byte offset into the scanned text
}

// Message returns the human-readable form shown in the editor's error list.
func (e ScanError) Message() string {
	switch e.Kind {
	case ErrUnmatchedClosing:
		return fmt.Sprintf("unmatched closing bracket at offset %d", e.Pos)
	case ErrUnclosedOpening:
		return fmt.Sprintf("unclosed opening bracket at offset %d", e.Pos)
	case ErrMalformedWeight:
		return fmt.Sprintf("malformed weight syntax at offset %d", e.Pos)
	default:
		return fmt.Sprintf("syntax error at offset %d", e.Pos)
	}
}
