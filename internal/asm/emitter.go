package asm

import (
	"fmt"
	"io"

	"asm10/internal/codec"
)

// WriteObject serializes a Result's memory image as the `.ob` artifact, per spec.md §4.6: a header
// line of the instruction and data counts, then one line per memory word. There is no trailing
// newline after the last line.
func WriteObject(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintf(w, "%s\t\t%s", codec.Encode(res.FinalIC, 1), codec.Encode(res.FinalDC, 1)); err != nil {
		return err
	}

	for i, mw := range res.Memory {
		addr := FirstAddress + i

		if _, err := fmt.Fprintf(w, "\n%s\t\t%s", codec.Encode(addr, 3), codec.Encode(int(mw.Bits()), 3)); err != nil {
			return err
		}
	}

	return nil
}

// WriteEntries serializes the `.ent` artifact: one line per entry, in declaration order. Callers
// should skip creating the file entirely when entries is empty, per spec.md §4.6.
func WriteEntries(w io.Writer, entries []Entry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s\t\t%s", e.Name, codec.Encode(e.Address, 1)); err != nil {
			return err
		}
	}

	return nil
}

// WriteExterns serializes the `.ext` artifact: one line per extern reference site, in the order
// operands were parsed. Callers should skip creating the file entirely when externs is empty.
func WriteExterns(w io.Writer, externs []ExternRef) error {
	for i, e := range externs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s\t\t%s", e.Name, codec.Encode(e.Address, 1)); err != nil {
			return err
		}
	}

	return nil
}
