package asm

import "fmt"

// Symbol is one entry of the symbol table: a label bound to a memory address, with flags recording
// how it was declared. Grounded on assembler.h's labelInfo struct.
type Symbol struct {
	Name     string
	Address  int
	IsExtern bool
	IsData   bool // true for .data, .string, and .mat symbols
	IsMat    bool
	DimX     int // .mat only: row count
	DimY     int // .mat only: column count
}

// SymbolTable is the append-only set of symbols declared in one translation unit. Grounded on
// firstRead.c's addLabelToArray/findLabel, minus the global array and its fixed-capacity C array
// semantics (capacity is still enforced, since that is part of spec.md's memory model, but storage
// here is a Go map).
type SymbolTable struct {
	order []string
	byName map[string]*Symbol
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]*Symbol)}
}

// Add declares a new symbol. It fails if the name is already declared or the table is at capacity.
func (t *SymbolTable) Add(name string, address int) (*Symbol, error) {
	if _, exists := t.byName[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, name)
	}

	if len(t.order) >= MaxSymbols {
		return nil, fmt.Errorf("%w: max symbols is %d", ErrCapacity, MaxSymbols)
	}

	sym := &Symbol{Name: name, Address: address}
	t.byName[name] = sym
	t.order = append(t.order, name)

	return sym, nil
}

// Get looks up a symbol by name.
func (t *SymbolTable) Get(name string) (*Symbol, bool) {
	sym, ok := t.byName[name]
	return sym, ok
}

// All returns every symbol in declaration order.
func (t *SymbolTable) All() []*Symbol {
	out := make([]*Symbol, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.byName[name])
	}

	return out
}

// RebaseData adds finalIC to the address of every data symbol (.data, .string, .mat), per
// spec.md §4.5's pass-2 step of placing the data segment after the final code address.
func (t *SymbolTable) RebaseData(finalIC int) {
	for _, sym := range t.byName {
		if sym.IsData {
			sym.Address += finalIC
		}
	}
}

// Entry is one name declared by a .entry directive, pending resolution to its symbol's final
// address.
type Entry struct {
	Name    string
	Line    int
	Address int
}

// EntryList is the set of .entry declarations in one translation unit. Grounded on
// firstRead.c's parserEntryDirc plus assembler.c's createEntriesFile.
type EntryList struct {
	byName  map[string]*Entry
	entries []*Entry
}

// NewEntryList returns an empty entry list.
func NewEntryList() *EntryList {
	return &EntryList{byName: make(map[string]*Entry)}
}

// Declare records a .entry declaration. It fails if the name was already declared as an entry.
func (l *EntryList) Declare(name string, line int) error {
	if _, exists := l.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateEntry, name)
	}

	e := &Entry{Name: name, Line: line}
	l.byName[name] = e
	l.entries = append(l.entries, e)

	return nil
}

// IsDeclared reports whether name was declared .entry.
func (l *EntryList) IsDeclared(name string) bool {
	_, ok := l.byName[name]
	return ok
}

// All returns every declared entry in declaration order.
func (l *EntryList) All() []*Entry {
	return l.entries
}
