// Package word defines the 10-bit memory word of the target machine: its two layouts, the ERA
// relocation tag, and the addressing-mode codes used in the command layout. It plays the role the
// teacher's internal/vm/words.go plays for the LC-3 simulator, narrowed from a 16-bit word with a
// register file and processor status down to the 10-bit word this machine actually has, since this
// assembler never executes code (spec.md's Non-goals exclude linking and execution).
package word

import "fmt"

// Width is the number of bits in a memory word.
const Width = 10

// Mask keeps only the low Width bits of a value.
const Mask = 1<<Width - 1

// Word is the base data type the assembler emits: a 10-bit value, stored in the low bits of a Go
// int. Negative values are accepted and are two's-complement encoded into the low Width bits by
// Bits.
type Word int

// Bits returns the 10-bit two's-complement bit pattern of w, ready for serialization.
func (w Word) Bits() uint16 {
	return uint16(w) & Mask
}

// Sext returns the value of the low n bits of w, sign extended to a full Word.
func Sext(v int, n uint) Word {
	shift := 32 - n
	return Word(int32(v<<shift) >> shift)
}

// ERA is the 2-bit relocation tag stored in the top two bits of every memory word.
type ERA uint8

// ERA values.
const (
	Absolute ERA = iota
	External
	Relocatable
)

//go:generate go run golang.org/x/tools/cmd/stringer -type ERA,AddressingMode -output strings_gen.go

func (e ERA) valid() bool { return e <= Relocatable }

// AddressingMode is the 2-bit code for how an operand addresses its value, stored in the command
// layout's source/destination mode fields.
type AddressingMode uint8

// Addressing modes, per spec.md §4.4's "Addressing-mode codes".
const (
	ModeNumber AddressingMode = iota
	ModeLabel
	ModeMat
	ModeRegister
)

// Command builds the command layout word: ERA in bits 8-9, opcode in bits 4-7, source mode in bits
// 2-3, destination mode in bits 0-1.
func Command(era ERA, opcode uint8, srcMode, dstMode AddressingMode) Word {
	if !era.valid() {
		panic(fmt.Sprintf("word: invalid ERA %d", era))
	}

	bits := uint16(era)<<8 | uint16(opcode&0x0f)<<4 | uint16(srcMode&0x3)<<2 | uint16(dstMode&0x3)
	return Word(bits)
}

// Registers builds the combined register-register operand word: ERA in bits 8-9, source register in
// bits 4-7, destination register in bits 0-3.
func Registers(era ERA, src, dst uint8) Word {
	bits := uint16(era)<<8 | uint16(src&0x0f)<<4 | uint16(dst&0x0f)
	return Word(bits)
}

// Value builds a value-layout word: ERA in bits 8-9 overlaying a signed value in bits 0-9.
func Value(era ERA, v int) Word {
	bits := uint16(era)<<8 | (Word(v).Bits() &^ (0x3 << 8))
	return Word(bits)
}

func (w Word) String() string {
	return fmt.Sprintf("%010b", w.Bits())
}
