package asm

import "errors"

// Sentinel errors. SymbolTable.Add and EntryList.Declare wrap theirs with fmt.Errorf("%w: ...") so
// that their callers can test with errors.Is; the generator formats ErrUndefinedSymbol and
// ErrAddressRange into message text. Once recorded by a Reporter, every diagnostic is plain text:
// Reporter.Err returns *SyntaxError values, which unwrap to ErrSyntax only.
var (
	ErrDuplicateSymbol = errors.New("asm: symbol already declared")
	ErrDuplicateEntry  = errors.New("asm: entry already declared")
	ErrCapacity        = errors.New("asm: capacity exceeded")
	ErrUndefinedSymbol = errors.New("asm: undefined symbol")
	ErrAddressRange    = errors.New("asm: address out of range for a 10-bit operand")
	ErrSyntax          = errors.New("asm: syntax error")
)

// SyntaxError is a single diagnostic tied to a source line. Reporter accumulates these; Err joins
// them into one error value for callers that just want a go/no-go signal.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
