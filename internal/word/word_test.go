package word_test

import (
	"testing"

	"asm10/internal/word"
)

func TestCommand(t *testing.T) {
	w := word.Command(word.Absolute, 15, word.ModeNumber, word.ModeNumber)
	if w.Bits() != 0x0f0 {
		t.Errorf("Command(Absolute, 15, 0, 0) = %010b, want %010b", w.Bits(), 0x0f0)
	}
}

func TestRegisters(t *testing.T) {
	w := word.Registers(word.Absolute, 3, 5)
	if got, want := w.Bits(), uint16(3<<4|5); got != want {
		t.Errorf("Registers(Absolute, 3, 5) = %010b, want %010b", got, want)
	}
}

func TestValue_negative(t *testing.T) {
	w := word.Value(word.Absolute, -3)
	// -3 in 10-bit two's complement is 0b1111111101; ERA=Absolute(0) overlays bits 8-9 with 0.
	if got, want := w.Bits(), uint16(0b0011111101); got != want {
		t.Errorf("Value(Absolute, -3) = %010b, want %010b", got, want)
	}
}

func TestValue_externalIsZero(t *testing.T) {
	w := word.Value(word.External, 0)
	if got, want := w.Bits(), uint16(1<<8); got != want {
		t.Errorf("Value(External, 0) = %010b, want %010b", got, want)
	}
}

func TestSext(t *testing.T) {
	if got, want := word.Sext(0b11111, 5), word.Word(-1); got != want {
		t.Errorf("Sext(0b11111, 5) = %d, want %d", got, want)
	}

	if got, want := word.Sext(0b01111, 5), word.Word(15); got != want {
		t.Errorf("Sext(0b01111, 5) = %d, want %d", got, want)
	}
}
