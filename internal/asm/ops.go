package asm

import "asm10/internal/word"

// command describes one mnemonic: its opcode and the number of operands it takes. Grounded on
// firstRead.c's command table.
type command struct {
	opcode uint8
	arity  int
}

// commands is the fixed instruction set of the target machine, per spec.md §4.1.
var commands = map[string]command{
	"mov": {0, 2},
	"cmp": {1, 2},
	"add": {2, 2},
	"sub": {3, 2},
	"not": {4, 1},
	"clr": {5, 1},
	"lea": {6, 2},
	"inc": {7, 1},
	"dec": {8, 1},
	"jmp": {9, 1},
	"bne": {10, 1},
	"red": {11, 1},
	"prn": {12, 1},
	"jsr": {13, 1},
	"rts": {14, 0},
	"stop": {15, 0},
}

// directives is the set of recognized directive names (without the leading '.').
var directives = map[string]bool{
	"data":   true,
	"string": true,
	"mat":    true,
	"extern": true,
	"entry":  true,
}

// numberDestAllowed reports whether opcode may take a Number destination operand: per
// areLegalOpTypes in firstRead.c, that is legal only for cmp (1) and prn (12). The other special
// case there, lea (6) requiring a Label source, is leaNeedsLabelSource.
func numberDestAllowed(opcode uint8) bool {
	return opcode == 1 || opcode == 12
}

func leaNeedsLabelSource(opcode uint8) bool {
	return opcode == 6
}

// modeOf reports the addressing-mode code an operand kind maps to.
func modeOf(k OperandKind) word.AddressingMode {
	switch k {
	case OperandNumber:
		return word.ModeNumber
	case OperandLabel:
		return word.ModeLabel
	case OperandMat:
		return word.ModeMat
	case OperandRegister:
		return word.ModeRegister
	default:
		return word.ModeNumber
	}
}
