package asm

import (
	"errors"
	"fmt"
	"io"
)

// severity classifies a diagnostic, per spec.md §4.7's three console message kinds.
type severity int

const (
	sevInfo severity = iota
	sevWarning
	sevError
)

func (s severity) tag() string {
	switch s {
	case sevWarning:
		return "[Warning]"
	case sevError:
		return "[Error]"
	default:
		return "[Info]"
	}
}

// diagnostic is one reported message.
type diagnostic struct {
	severity severity
	line     int
	message  string
}

func (d diagnostic) String() string {
	if d.line > 0 {
		return fmt.Sprintf("%s At line %d: %s", d.severity.tag(), d.line, d.message)
	}

	return fmt.Sprintf("%s %s", d.severity.tag(), d.message)
}

// Reporter collects diagnostics for one translation unit and gates artifact emission: per
// spec.md §4.7, any file with at least one [Error] message produces no .ob/.ent/.ext output.
// Grounded on assembler.c's printError and parseFile's [Info] console trace.
type Reporter struct {
	diagnostics []diagnostic
	errorCount  int
}

// NewReporter returns an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Errorf records a line-numbered error.
func (r *Reporter) Errorf(line int, format string, args ...any) {
	r.diagnostics = append(r.diagnostics, diagnostic{sevError, line, fmt.Sprintf(format, args...)})
	r.errorCount++
}

// Warnf records a line-numbered warning. Warnings do not gate emission.
func (r *Reporter) Warnf(line int, format string, args ...any) {
	r.diagnostics = append(r.diagnostics, diagnostic{sevWarning, line, fmt.Sprintf(format, args...)})
}

// Infof records an informational message, not tied to a particular line.
func (r *Reporter) Infof(format string, args ...any) {
	r.diagnostics = append(r.diagnostics, diagnostic{sevInfo, 0, fmt.Sprintf(format, args...)})
}

// ErrorCount returns the number of errors reported so far.
func (r *Reporter) ErrorCount() int {
	return r.errorCount
}

// Err joins every reported error into a single error value, or nil if there were none.
func (r *Reporter) Err() error {
	if r.errorCount == 0 {
		return nil
	}

	errs := make([]error, 0, r.errorCount)
	for _, d := range r.diagnostics {
		if d.severity == sevError {
			errs = append(errs, &SyntaxError{Line: d.line, Message: d.message})
		}
	}

	return errors.Join(errs...)
}

// WriteTo prints every diagnostic, in the order reported, one per line.
func (r *Reporter) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, d := range r.diagnostics {
		m, err := fmt.Fprintln(w, d.String())
		n += int64(m)
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
