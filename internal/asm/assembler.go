package asm

import "io"

// Translate runs both passes over r and returns the resulting memory image together with every
// diagnostic collected along the way. The second pass always runs, even when the first pass
// reported errors, so that a single invocation surfaces everything wrong with a file in one go;
// callers must check report.ErrorCount() before treating res as fit to emit, per spec.md §4.7.
func Translate(r io.Reader) (res *Result, report *Reporter) {
	report = NewReporter()
	ctx := NewContext(report)

	NewParser(ctx).Parse(r)

	return Generate(ctx), report
}
