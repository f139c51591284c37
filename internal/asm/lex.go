package asm

import (
	"strconv"
	"strings"
)

// trimLeft strips leading spaces and tabs, grounded on helpFunctions.c's trimLeftStr.
func trimLeft(s string) string {
	return strings.TrimLeft(s, " \t")
}

// trim strips leading and trailing spaces and tabs, grounded on helpFunctions.c's trimStr.
func trim(s string) string {
	return strings.Trim(s, " \t")
}

func isWhitespace(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isOneWord reports whether s, once left-trimmed, is non-empty and contains no space or tab at
// all: a single token with no trailing whitespace either.
func isOneWord(s string) bool {
	s = trimLeft(s)
	if s == "" {
		return false
	}

	return !strings.ContainsAny(s, " \t")
}

// firstToken splits s on its first run of whitespace, returning the token and what follows,
// both left-trimmed. Grounded on helpFunctions.c's getFirstToken.
func firstToken(s string) (token, rest string) {
	s = trimLeft(s)
	if s == "" {
		return "", ""
	}

	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}

	return s[:i], trimLeft(s[i+1:])
}

// firstOperand splits s on its first comma, reporting whether one was found. Grounded on
// helpFunctions.c's getFirstOperand.
func firstOperand(s string) (operand, rest string, foundComma bool) {
	i := strings.IndexByte(s, ',')
	if i < 0 {
		return trim(s), "", false
	}

	return trim(s[:i]), trim(s[i+1:]), true
}

func isRegisterName(s string) (reg uint8, ok bool) {
	if len(s) != 2 || s[0] != 'r' {
		return 0, false
	}

	if s[1] < '0' || s[1] > '7' {
		return 0, false
	}

	return s[1] - '0', true
}

// isLegalLabel validates a label per helpFunctions.c's isLegalLabel: not too long, not empty, no
// leading whitespace, alphanumeric only, starts with a letter, and not a register or command name.
func isLegalLabel(s string) bool {
	if len(s) == 0 || len(s) > MaxLabelLen {
		return false
	}

	if s[0] == ' ' || s[0] == '\t' {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}

	if !(s[0] >= 'a' && s[0] <= 'z' || s[0] >= 'A' && s[0] <= 'Z') {
		return false
	}

	if _, ok := isRegisterName(s); ok {
		return false
	}

	if _, ok := commands[strings.ToLower(s)]; ok {
		return false
	}

	return true
}

// isMatSyntax reports whether s has the form name[idx1][idx2].
func isMatSyntax(s string) bool {
	i := strings.IndexByte(s, '[')
	if i <= 0 {
		return false
	}

	j := strings.IndexByte(s[i+1:], ']')
	if j < 0 {
		return false
	}

	j += i + 1

	k := strings.IndexByte(s[j+1:], '[')
	if k < 0 {
		return false
	}

	k += j + 1

	l := strings.IndexByte(s[k+1:], ']')

	return l >= 0 && k+1+l == len(s)-1
}

// splitMat splits a validated mat-syntax operand into its base label and two bracketed indices.
func splitMat(s string) (label, idx1, idx2 string) {
	i := strings.IndexByte(s, '[')
	j := strings.IndexByte(s[i+1:], ']') + i + 1
	k := strings.IndexByte(s[j+1:], '[') + j + 1
	l := strings.IndexByte(s[k+1:], ']') + k + 1

	return s[:i], s[i+1 : j], s[k+1 : l]
}

// parseIndex parses a single mat subscript: either a register name or a decimal integer, per
// helpFunctions.c's checkMatAndGetValue.
func parseIndex(s string) (idx Index, ok bool) {
	if reg, isReg := isRegisterName(s); isReg {
		return Index{IsRegister: true, Register: reg}, true
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return Index{}, false
	}

	return Index{Value: n}, true
}

// isLegalNumber parses a signed integer literal and range-checks it against a symmetric range
// derived from bits: [-(2^(bits-1)-1), 2^(bits-1)-1]. Grounded on helpFunctions.c's isLegalNumber,
// adjusted per the Open Question decision recorded in SPEC_FULL.md (the original's call sites
// disagree with the spec's stated boundary behavior; this formula reconciles them).
func isLegalNumber(s string, bits uint) (value int, ok bool) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}

	maxNum := int64(1)<<(bits-1) - 1
	if n > maxNum || n < -maxNum {
		return 0, false
	}

	return int(n), true
}

// isLegalStringParam reports whether s is a properly quoted string parameter and returns its
// unquoted content.
func isLegalStringParam(s string) (content string, ok bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}

	return s[1 : len(s)-1], true
}
