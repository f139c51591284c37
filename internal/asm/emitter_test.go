package asm_test

import (
	"strings"
	"testing"

	"asm10/internal/asm"
)

func TestWriteObject_stopOnly(t *testing.T) {
	res, report := translate(t, "MAIN: stop\n")
	if report.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", report.Err())
	}

	var buf strings.Builder
	if err := asm.WriteObject(&buf, res); err != nil {
		t.Fatalf("WriteObject: %s", err)
	}

	want := "b\t\ta\nbcba\t\tddaa"
	if got := buf.String(); got != want {
		t.Errorf("object = %q, want %q", got, want)
	}
}

func TestWriteObject_empty(t *testing.T) {
	res, report := translate(t, "; nothing\n")
	if report.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", report.Err())
	}

	var buf strings.Builder
	if err := asm.WriteObject(&buf, res); err != nil {
		t.Fatalf("WriteObject: %s", err)
	}

	if got, want := buf.String(), "a\t\ta"; got != want {
		t.Errorf("object = %q, want %q", got, want)
	}
}

func TestWriteEntries(t *testing.T) {
	res, report := translate(t, ".entry LBL\nLBL: stop\n")
	if report.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", report.Err())
	}

	var buf strings.Builder
	if err := asm.WriteEntries(&buf, res.Entries); err != nil {
		t.Fatalf("WriteEntries: %s", err)
	}

	if got, want := buf.String(), "LBL\t\tbcba"; got != want {
		t.Errorf("entries = %q, want %q", got, want)
	}
}

func TestWriteExterns(t *testing.T) {
	res, report := translate(t, ".extern X\njmp X\n")
	if report.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", report.Err())
	}

	var buf strings.Builder
	if err := asm.WriteExterns(&buf, res.Externs); err != nil {
		t.Fatalf("WriteExterns: %s", err)
	}

	if got, want := buf.String(), "X\t\tbcbb"; got != want {
		t.Errorf("externs = %q, want %q", got, want)
	}
}
