package asm_test

import (
	"strings"
	"testing"

	"asm10/internal/asm"
)

func parse(t *testing.T, src string) *asm.Context {
	t.Helper()

	report := asm.NewReporter()
	ctx := asm.NewContext(report)
	asm.NewParser(ctx).Parse(strings.NewReader(src))

	return ctx
}

func TestParse_stopOnly(t *testing.T) {
	ctx := parse(t, "MAIN: stop\n")

	if ctx.Report.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", ctx.Report.Err())
	}

	if ctx.IC != 1 {
		t.Errorf("IC = %d, want 1", ctx.IC)
	}

	sym, ok := ctx.Symbols.Get("MAIN")
	if !ok {
		t.Fatalf("MAIN not declared")
	}

	if sym.Address != asm.FirstAddress {
		t.Errorf("MAIN address = %d, want %d", sym.Address, asm.FirstAddress)
	}
}

func TestParse_externIgnoresPrecedingLabel(t *testing.T) {
	ctx := parse(t, "LBL: .extern X\n")

	if _, ok := ctx.Symbols.Get("LBL"); ok {
		t.Errorf("label before .extern should have been discarded, not declared")
	}

	sym, ok := ctx.Symbols.Get("X")
	if !ok {
		t.Fatalf("X not declared")
	}

	if !sym.IsExtern {
		t.Errorf("X should be extern")
	}
}

func TestParse_entryDirective(t *testing.T) {
	ctx := parse(t, ".entry LBL\nLBL: stop\n")

	if !ctx.Entries.IsDeclared("LBL") {
		t.Errorf("LBL should be a declared entry")
	}
}

func TestParse_dataLabelAddress(t *testing.T) {
	ctx := parse(t, "mov r1, r2\nD: .data 5, -3\n")

	sym, ok := ctx.Symbols.Get("D")
	if !ok {
		t.Fatalf("D not declared")
	}

	if !sym.IsData {
		t.Errorf("D should be flagged as a data symbol")
	}

	if sym.Address != asm.FirstAddress {
		t.Errorf("D address (pre-rebase) = %d, want %d", sym.Address, asm.FirstAddress)
	}

	if ctx.DC != 2 {
		t.Errorf("DC = %d, want 2", ctx.DC)
	}
}

func TestParse_immediateBoundary(t *testing.T) {
	ctx := parse(t, "cmp #127, r1\ncmp #-127, r1\ncmp #128, r1\ncmp #-128, r1\n")

	if ctx.Lines[0].IsError || ctx.Lines[1].IsError {
		t.Errorf("±127 should be accepted")
	}

	if !ctx.Lines[2].IsError || !ctx.Lines[3].IsError {
		t.Errorf("±128 should be rejected")
	}
}

func TestParse_dataBoundary(t *testing.T) {
	ctx := parse(t, ".data 511\n.data -511\n.data 512\n.data -512\n")

	if ctx.Lines[0].IsError || ctx.Lines[1].IsError {
		t.Errorf("±511 should be accepted")
	}

	if !ctx.Lines[2].IsError || !ctx.Lines[3].IsError {
		t.Errorf("±512 should be rejected")
	}
}

func TestParse_registerPairSharesOneWord(t *testing.T) {
	ctx := parse(t, "mov r1, r2\n")

	if ctx.IC != 1 {
		t.Errorf("IC = %d, want 1 (register pair must share one word)", ctx.IC)
	}
}

func TestParse_lineTooLong(t *testing.T) {
	line80 := "; " + strings.Repeat("a", 78)
	line81 := "; " + strings.Repeat("a", 79)

	ctx := parse(t, line80+"\nstop\n")
	if ctx.Report.ErrorCount() != 0 {
		t.Errorf("an 80-char line should be accepted, got: %v", ctx.Report.Err())
	}

	ctx = parse(t, line81+"\nstop\n")
	if ctx.Report.ErrorCount() == 0 {
		t.Errorf("an 81-char line should be rejected")
	}
}

func TestParse_leaRequiresLabelSource(t *testing.T) {
	ctx := parse(t, "lea #5, r1\n")

	if !ctx.Lines[0].IsError {
		t.Errorf("lea with a non-label source should be rejected")
	}
}

func TestParse_numberDestinationOnlyForCmpAndPrn(t *testing.T) {
	ctx := parse(t, "cmp r1, #5\nprn #5\nmov r1, #5\n")

	if ctx.Lines[0].IsError {
		t.Errorf("cmp with a number destination should be legal: %v", ctx.Report.Err())
	}

	if ctx.Lines[1].IsError {
		t.Errorf("prn with a number destination should be legal: %v", ctx.Report.Err())
	}

	if !ctx.Lines[2].IsError {
		t.Errorf("mov with a number destination should be illegal")
	}
}

func TestParse_matDirective(t *testing.T) {
	ctx := parse(t, "M: .mat [2][3] 1, 2, 3\n")

	sym, ok := ctx.Symbols.Get("M")
	if !ok {
		t.Fatalf("M not declared")
	}

	if !sym.IsMat || sym.DimX != 2 || sym.DimY != 3 {
		t.Errorf("M = %+v, want mat 2x3", sym)
	}

	if ctx.DC != 6 {
		t.Errorf("DC = %d, want 6", ctx.DC)
	}
}
