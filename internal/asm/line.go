package asm

// Line is the record the first pass builds for one source line, consumed by the second pass.
// Grounded on assembler.h's lineInfo struct, generalized per the REDESIGN FLAGS into typed Go
// fields (a proper Operand sum type, an explicit *Symbol back-reference) rather than the
// original's flat, partially-overloaded struct.
type Line struct {
	Num     int
	Text    string
	Address int // memory address of this line's first word, valid when HasCommand is true

	IsComment bool
	IsError   bool

	Label *Symbol // the symbol this line declared, if any and if legal

	IsDirective bool
	Directive   string // directive name without the leading '.', valid when IsDirective

	HasCommand bool
	Opcode     uint8
	Arity      int
	Mnemonic   string
	Src, Dst   Operand // valid per Arity: 2 operands use both, 1 uses Dst only, 0 uses neither
}
