package asm

import "asm10/internal/word"

// ExternRef is one site where an external symbol's address is referenced by a code word, as
// required by the .ext artifact. Grounded on assembler.c's createExternFile.
type ExternRef struct {
	Name    string
	Address int
}

// Result is the outcome of the second pass: a flat memory image ready for the base-4 emitter, plus
// the resolved entry and extern tables.
type Result struct {
	Memory  []word.Word // Memory[i] is the word at address FirstAddress+i
	FinalIC int
	FinalDC int
	Entries []Entry
	Externs []ExternRef
}

// generator walks a Context's first-pass records and produces a Result. Grounded on spec.md §4.5;
// there was no secondRead.c in the retrieved original source to ground the exact traversal order
// against, so the ordering below (rebase data symbols, walk code in line order, append the data
// segment) follows spec.md literally.
type generator struct {
	ctx     *Context
	externs []ExternRef
}

// Generate runs the second pass over ctx, which must already have completed the first pass.
func Generate(ctx *Context) *Result {
	g := &generator{ctx: ctx}

	finalIC := ctx.IC
	ctx.Symbols.RebaseData(finalIC)

	mem := make([]word.Word, finalIC+ctx.DC)

	for _, line := range ctx.Lines {
		if !line.HasCommand || line.IsError {
			continue
		}

		g.emitLine(mem, line)
	}

	for i, v := range ctx.Data {
		mem[finalIC+i] = word.Value(word.Absolute, v)
	}

	return &Result{
		Memory:  mem,
		FinalIC: finalIC,
		FinalDC: ctx.DC,
		Entries: g.resolveEntries(),
		Externs: g.externs,
	}
}

func (g *generator) emitLine(mem []word.Word, line *Line) {
	pos := line.Address - FirstAddress

	srcMode, dstMode := word.ModeNumber, word.ModeNumber

	switch line.Arity {
	case 2:
		srcMode, dstMode = modeOf(line.Src.Kind), modeOf(line.Dst.Kind)
	case 1:
		dstMode = modeOf(line.Dst.Kind)
	}

	mem[pos] = word.Command(word.Absolute, line.Opcode, srcMode, dstMode)
	cursor := pos + 1

	switch {
	case line.Arity == 2 && line.Src.Kind == OperandRegister && line.Dst.Kind == OperandRegister:
		mem[cursor] = word.Registers(word.Absolute, line.Src.Register, line.Dst.Register)
		addr := FirstAddress + cursor
		line.Src.Address, line.Dst.Address = addr, addr
		cursor++
	case line.Arity == 2:
		cursor += g.emitOperand(mem, cursor, line.Num, &line.Src, true)
		cursor += g.emitOperand(mem, cursor, line.Num, &line.Dst, false)
	case line.Arity == 1:
		cursor += g.emitOperand(mem, cursor, line.Num, &line.Dst, false)
	}
}

// emitOperand encodes op into mem starting at cursor and returns how many words it consumed (1,
// or 2 for a .mat operand). isSrc picks which nibble a standalone register operand occupies.
func (g *generator) emitOperand(mem []word.Word, cursor, lineNum int, op *Operand, isSrc bool) int {
	addr := FirstAddress + cursor
	op.Address = addr

	switch op.Kind {
	case OperandRegister:
		if isSrc {
			mem[cursor] = word.Registers(word.Absolute, op.Register, 0)
		} else {
			mem[cursor] = word.Registers(word.Absolute, 0, op.Register)
		}

		return 1

	case OperandLabel:
		mem[cursor] = g.resolveSymbolWord(lineNum, op.Label, addr)
		return 1

	case OperandMat:
		mem[cursor] = g.resolveSymbolWord(lineNum, op.Label, addr)
		mem[cursor+1] = matIndexWord(op.Idx1, op.Idx2)

		return 2

	default: // OperandNumber, OperandInvalid
		mem[cursor] = word.Value(word.Absolute, op.Number)
		return 1
	}
}

// resolveSymbolWord looks up name and builds the word layout appropriate to how it was declared:
// External for an extern symbol (recording the reference site for the .ext artifact), Relocatable
// for anything else defined in this file, or an error if it was never declared.
func (g *generator) resolveSymbolWord(lineNum int, name string, addr int) word.Word {
	sym, ok := g.ctx.Symbols.Get(name)
	if !ok {
		g.ctx.Report.Errorf(lineNum, "%s: %q", ErrUndefinedSymbol, name)
		return word.Value(word.Absolute, 0)
	}

	if sym.IsExtern {
		g.externs = append(g.externs, ExternRef{Name: name, Address: addr})
		return word.Value(word.External, 0)
	}

	if sym.Address > word.Mask {
		g.ctx.Report.Errorf(lineNum, "%s: %q resolves to address %d", ErrAddressRange, name, sym.Address)
		return word.Value(word.Absolute, 0)
	}

	return word.Value(word.Relocatable, sym.Address)
}

// matIndexWord packs a .mat operand's two subscripts into its second word. Per the Open Question
// decision recorded in SPEC_FULL.md, an integer-literal subscript contributes 0; only a register
// subscript contributes its register number.
func matIndexWord(i1, i2 Index) word.Word {
	var r1, r2 uint8

	if i1.IsRegister {
		r1 = i1.Register
	}

	if i2.IsRegister {
		r2 = i2.Register
	}

	return word.Registers(word.Absolute, r1, r2)
}

func (g *generator) resolveEntries() []Entry {
	var out []Entry

	for _, e := range g.ctx.Entries.All() {
		sym, ok := g.ctx.Symbols.Get(e.Name)
		if !ok {
			g.ctx.Report.Errorf(e.Line, "entry %q is not defined in this file", e.Name)
			continue
		}

		if sym.IsExtern {
			g.ctx.Report.Errorf(e.Line, "entry %q cannot also be declared extern", e.Name)
			continue
		}

		out = append(out, Entry{Name: e.Name, Line: e.Line, Address: sym.Address})
	}

	return out
}
