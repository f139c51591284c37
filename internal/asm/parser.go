package asm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"asm10/internal/word"
)

// Parser runs the first pass: it reads source lines, builds the symbol table, classifies operands,
// and records one Line per source line in ctx.Lines. Grounded on firstRead.c's firstFileRead and
// parseLine, restructured per the REDESIGN FLAGS so that a label preceding .extern or .entry is
// never added to the symbol table in the first place (the original adds it, then discards it in
// removeLastLabel).
type Parser struct {
	ctx *Context
}

// NewParser returns a parser that will accumulate into ctx.
func NewParser(ctx *Context) *Parser {
	return &Parser{ctx: ctx}
}

// Parse reads every line of r and appends the resulting records to p's Context. It stops early,
// without reading the remainder of r, once the file exceeds the line-count or memory-word limits,
// since those are fatal to the whole translation unit.
func (p *Parser) Parse(r io.Reader) {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		if lineNum > MaxLines {
			p.ctx.Report.Errorf(lineNum, "file has too many lines; max is %d", MaxLines)
			return
		}

		text := scanner.Text()
		if len(text) > MaxLineLength {
			p.ctx.Report.Errorf(lineNum, "line is too long; max length is %d", MaxLineLength)
			p.ctx.Lines = append(p.ctx.Lines, &Line{Num: lineNum, Text: text, IsError: true})
			continue
		}

		line := p.parseLine(lineNum, text)
		p.ctx.Lines = append(p.ctx.Lines, line)

		if p.ctx.IC+p.ctx.DC > MaxMemory {
			p.ctx.Report.Errorf(lineNum, "program exceeds %d memory words", MaxMemory)
			return
		}
	}
}

func (p *Parser) parseLine(lineNum int, text string) *Line {
	line := &Line{Num: lineNum, Text: text}

	if isWhitespace(text) {
		line.IsComment = true
		return line
	}

	if text[0] == ';' {
		line.IsComment = true
		return line
	}

	line.Address = FirstAddress + p.ctx.IC

	remaining := text

	var pendingLabel string
	hasLabel, labelLegal := false, false

	if idx := strings.IndexByte(remaining, ':'); idx >= 0 {
		head := remaining[:idx]
		if isOneWord(head) {
			hasLabel = true
			remaining = remaining[idx+1:]

			if isLegalLabel(head) {
				labelLegal = true
				pendingLabel = head
			} else {
				p.ctx.Report.Errorf(lineNum, "illegal label %q", trim(head))
				line.IsError = true
			}
		}
	}

	token, rest := firstToken(remaining)
	remaining = rest

	if token == "" {
		p.ctx.Report.Errorf(lineNum, "a label must be followed by a command or directive")
		line.IsError = true

		return line
	}

	if strings.HasPrefix(token, ".") {
		name := strings.ToLower(token[1:])
		line.IsDirective = true
		line.Directive = name

		if !directives[name] {
			p.ctx.Report.Errorf(lineNum, "no such directive %q", token)
			line.IsError = true

			return line
		}

		switch name {
		case "extern":
			if hasLabel && labelLegal {
				p.ctx.Report.Warnf(lineNum, "the assembler ignored the label before the directive")
			}

			p.parseExtern(line, remaining)
		case "entry":
			if hasLabel && labelLegal {
				p.ctx.Report.Warnf(lineNum, "the assembler ignored the label before the directive")
			}

			p.parseEntry(line, remaining)
		case "data":
			if hasLabel && labelLegal {
				p.addDataLabel(line, pendingLabel)
			}

			p.parseData(line, remaining)
		case "string":
			if hasLabel && labelLegal {
				p.addDataLabel(line, pendingLabel)
			}

			p.parseString(line, remaining)
		case "mat":
			if hasLabel && labelLegal {
				p.addDataLabel(line, pendingLabel)
			}

			p.parseMat(line, remaining)
		}

		return line
	}

	line.HasCommand = true

	cmd, ok := commands[strings.ToLower(token)]
	if !ok {
		p.ctx.Report.Errorf(lineNum, "no such command %q", token)
		line.IsError = true

		return line
	}

	line.Mnemonic = strings.ToLower(token)
	line.Opcode = cmd.opcode
	line.Arity = cmd.arity

	if hasLabel && labelLegal {
		sym, err := p.ctx.Symbols.Add(pendingLabel, line.Address)
		if err != nil {
			p.ctx.Report.Errorf(lineNum, "%s", err)
			line.IsError = true
		} else {
			line.Label = sym
		}
	}

	p.parseOperands(line, cmd, remaining)

	operandWords := 0

	switch {
	case cmd.arity == 2 && line.Src.Kind == OperandRegister && line.Dst.Kind == OperandRegister:
		// Two register operands share a single word, per spec.md §3's register layout.
		operandWords = 1
	case cmd.arity == 2:
		operandWords = line.Src.wordCount() + line.Dst.wordCount()
	case cmd.arity == 1:
		operandWords = line.Dst.wordCount()
	}

	p.ctx.IC += 1 + operandWords

	return line
}

func (p *Parser) addDataLabel(line *Line, name string) {
	sym, err := p.ctx.Symbols.Add(name, FirstAddress+p.ctx.DC)
	if err != nil {
		p.ctx.Report.Errorf(line.Num, "%s", err)
		line.IsError = true

		return
	}

	sym.IsData = true
	line.Label = sym
}

func (p *Parser) parseExtern(line *Line, remaining string) {
	name := trim(remaining)
	if !isLegalLabel(name) {
		p.ctx.Report.Errorf(line.Num, "illegal label %q in extern directive", name)
		line.IsError = true

		return
	}

	if _, exists := p.ctx.Symbols.Get(name); exists {
		p.ctx.Report.Errorf(line.Num, "symbol %q already declared", name)
		line.IsError = true

		return
	}

	sym, err := p.ctx.Symbols.Add(name, 0)
	if err != nil {
		p.ctx.Report.Errorf(line.Num, "%s", err)
		line.IsError = true

		return
	}

	sym.IsExtern = true
}

func (p *Parser) parseEntry(line *Line, remaining string) {
	name := trim(remaining)
	if !isLegalLabel(name) {
		p.ctx.Report.Errorf(line.Num, "illegal label %q in entry directive", name)
		line.IsError = true

		return
	}

	if err := p.ctx.Entries.Declare(name, line.Num); err != nil {
		p.ctx.Report.Errorf(line.Num, "%s", err)
		line.IsError = true
	}
}

func (p *Parser) parseData(line *Line, remaining string) {
	if trim(remaining) == "" {
		p.ctx.Report.Errorf(line.Num, "missing data values")
		line.IsError = true

		return
	}

	parts := strings.Split(remaining, ",")
	values := make([]int, 0, len(parts))

	for _, raw := range parts {
		tok := trim(raw)
		if tok == "" {
			p.ctx.Report.Errorf(line.Num, "empty operand in data list")
			line.IsError = true

			return
		}

		v, ok := isLegalNumber(tok, word.Width)
		if !ok {
			p.ctx.Report.Errorf(line.Num, "illegal number %q", tok)
			line.IsError = true

			return
		}

		values = append(values, v)
	}

	p.ctx.Data = append(p.ctx.Data, values...)
	p.ctx.DC += len(values)
}

func (p *Parser) parseString(line *Line, remaining string) {
	content, ok := isLegalStringParam(trim(remaining))
	if !ok {
		p.ctx.Report.Errorf(line.Num, "illegal string parameter")
		line.IsError = true

		return
	}

	for i := 0; i < len(content); i++ {
		p.ctx.Data = append(p.ctx.Data, int(content[i]))
	}

	p.ctx.Data = append(p.ctx.Data, 0)
	p.ctx.DC += len(content) + 1
}

func (p *Parser) parseMat(line *Line, remaining string) {
	s := trim(remaining)

	x, y, tail, ok := parseMatDims(s)
	if !ok {
		p.ctx.Report.Errorf(line.Num, "illegal matrix dimensions")
		line.IsError = true

		return
	}

	if x <= 0 || y <= 0 {
		p.ctx.Report.Errorf(line.Num, "matrix dimensions must be positive")
		line.IsError = true

		return
	}

	total := x * y
	values := make([]int, 0, total)

	if tail != "" {
		for _, raw := range strings.Split(tail, ",") {
			tok := trim(raw)

			v, ok := isLegalNumber(tok, word.Width)
			if !ok {
				p.ctx.Report.Errorf(line.Num, "illegal number %q", tok)
				line.IsError = true

				return
			}

			values = append(values, v)
		}

		if len(values) > total {
			p.ctx.Report.Errorf(line.Num, "too many matrix initializers; want at most %d", total)
			line.IsError = true

			return
		}
	}

	for len(values) < total {
		values = append(values, 0)
	}

	p.ctx.Data = append(p.ctx.Data, values...)
	p.ctx.DC += total

	if line.Label != nil {
		line.Label.IsMat = true
		line.Label.DimX = x
		line.Label.DimY = y
	}
}

// parseMatDims parses the "[x][y]" prefix of a .mat directive's operand text, returning the
// dimensions and whatever (possibly empty) text follows.
func parseMatDims(s string) (x, y int, tail string, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return 0, 0, "", false
	}

	i := strings.IndexByte(s, ']')
	if i < 0 {
		return 0, 0, "", false
	}

	xv, err := strconv.Atoi(trim(s[1:i]))
	if err != nil {
		return 0, 0, "", false
	}

	rest := s[i+1:]
	if len(rest) == 0 || rest[0] != '[' {
		return 0, 0, "", false
	}

	j := strings.IndexByte(rest, ']')
	if j < 0 {
		return 0, 0, "", false
	}

	yv, err := strconv.Atoi(trim(rest[1:j]))
	if err != nil {
		return 0, 0, "", false
	}

	return xv, yv, trim(rest[j+1:]), true
}

func (p *Parser) parseOperands(line *Line, cmd command, remaining string) {
	remaining = trim(remaining)

	if cmd.arity == 0 {
		if remaining != "" {
			p.ctx.Report.Errorf(line.Num, "too many operands")
			line.IsError = true
		}

		return
	}

	first, rest, hasComma := firstOperand(remaining)
	if first == "" {
		p.ctx.Report.Errorf(line.Num, "not enough operands")
		line.IsError = true

		return
	}

	if cmd.arity == 1 {
		if hasComma {
			p.ctx.Report.Errorf(line.Num, "too many operands")
			line.IsError = true

			return
		}

		dst, ok := p.classifyOperand(line, first)
		if !ok {
			return
		}

		line.Dst = dst
		p.checkOperandLegality(line, cmd, Operand{}, dst, false)

		return
	}

	if !hasComma || trim(rest) == "" {
		p.ctx.Report.Errorf(line.Num, "not enough operands")
		line.IsError = true

		return
	}

	second, _, hasComma2 := firstOperand(rest)
	if hasComma2 {
		p.ctx.Report.Errorf(line.Num, "too many operands")
		line.IsError = true

		return
	}

	src, ok1 := p.classifyOperand(line, first)
	dst, ok2 := p.classifyOperand(line, second)

	if !ok1 || !ok2 {
		return
	}

	line.Src = src
	line.Dst = dst

	p.checkOperandLegality(line, cmd, src, dst, true)
}

func (p *Parser) classifyOperand(line *Line, tok string) (Operand, bool) {
	tok = trim(tok)
	if tok == "" {
		p.ctx.Report.Errorf(line.Num, "empty operand")
		line.IsError = true

		return Operand{Kind: OperandInvalid}, false
	}

	if tok[0] == '#' {
		v, ok := isLegalNumber(tok[1:], 8)
		if !ok {
			p.ctx.Report.Errorf(line.Num, "illegal immediate value %q", tok)
			line.IsError = true

			return Operand{Kind: OperandInvalid}, false
		}

		return Operand{Kind: OperandNumber, Number: v}, true
	}

	if isMatSyntax(tok) {
		base, idx1s, idx2s := splitMat(tok)
		if !isLegalLabel(base) {
			p.ctx.Report.Errorf(line.Num, "illegal matrix label %q", base)
			line.IsError = true

			return Operand{Kind: OperandInvalid}, false
		}

		i1, ok1 := parseIndex(trim(idx1s))
		i2, ok2 := parseIndex(trim(idx2s))

		if !ok1 || !ok2 {
			p.ctx.Report.Errorf(line.Num, "illegal matrix subscript in %q", tok)
			line.IsError = true

			return Operand{Kind: OperandInvalid}, false
		}

		return Operand{Kind: OperandMat, Label: base, Idx1: i1, Idx2: i2}, true
	}

	if reg, ok := isRegisterName(tok); ok {
		return Operand{Kind: OperandRegister, Register: reg}, true
	}

	if isLegalLabel(tok) {
		return Operand{Kind: OperandLabel, Label: tok}, true
	}

	p.ctx.Report.Errorf(line.Num, "illegal operand %q", tok)
	line.IsError = true

	return Operand{Kind: OperandInvalid}, false
}

func (p *Parser) checkOperandLegality(line *Line, cmd command, src, dst Operand, hasSrc bool) {
	if hasSrc && leaNeedsLabelSource(cmd.opcode) && src.Kind != OperandLabel {
		p.ctx.Report.Errorf(line.Num, "lea requires a label source operand")
		line.IsError = true
	}

	if dst.Kind == OperandNumber && !numberDestAllowed(cmd.opcode) {
		p.ctx.Report.Errorf(line.Num, "illegal destination operand type for %q", line.Mnemonic)
		line.IsError = true
	}
}
