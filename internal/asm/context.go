package asm

// Context is the state of one translation unit: its symbol table, entry declarations, data
// segment, and the per-line records the first pass builds. Per the REDESIGN FLAGS, this replaces
// the original's four process-wide globals (the label array, its count, the data array, and the
// entries array) with an explicit, passed-around value, so that assembling one file can never
// leak state into the next and no "reset between files" step (assembler.c's clearData) is needed.
type Context struct {
	Symbols *SymbolTable
	Entries *EntryList
	Data    []int // raw data-segment values, in emission order, not yet word-encoded
	Lines   []*Line
	IC      int // instruction counter: words of code emitted so far
	DC      int // data counter: words of data emitted so far
	Report  *Reporter
}

// NewContext returns a Context ready for a fresh translation unit.
func NewContext(report *Reporter) *Context {
	return &Context{
		Symbols: NewSymbolTable(),
		Entries: NewEntryList(),
		Report:  report,
	}
}
