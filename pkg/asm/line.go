package asm

import (
	"fmt"
	"strings"

	"tinkasm/pkg/tinker"
)

type lineKind int

const (
	lineBlank lineKind = iota // empty line or whole-line comment
	lineDirective
	lineLabelDef
	lineContent // instruction or data cell, depending on the active section
)

// sourceLine is the classified form of one raw source line. Both passes
// classify every line the same way, so they always agree on what a line is.
type sourceLine struct {
	no       int
	kind     lineKind
	name     string   // directive name or defined label
	mnemonic string   // first token of a content line
	operands []string // remaining tokens, comma separators stripped
}

// operandSplitter turns comma separators into whitespace so "addi r1, 5"
// and "addi r1 5" tokenize identically. Parenthesized memory operands and
// :label references survive as single tokens.
var operandSplitter = strings.NewReplacer(",", " ")

// classifyLine decides what raw is: blank, directive, label definition or
// content. The first non-space byte picks the class; ';' starts a comment,
// '.' a directive and ':' a label definition.
func classifyLine(raw string, no int) (sourceLine, error) {
	ln := sourceLine{no: no}

	line := strings.TrimSpace(raw)
	if line == "" || line[0] == ';' {
		return ln, nil
	}

	if line[0] == '.' {
		ln.kind = lineDirective
		ln.name = strings.Fields(line)[0]
		return ln, nil
	}

	if line[0] == ':' {
		fields := strings.Fields(line[1:])
		switch {
		case len(fields) == 0:
			return ln, atLine(fmt.Errorf("%w: empty label definition", ErrMalformedOperand), no)
		case len(fields) > 1:
			return ln, atLine(fmt.Errorf("%w: unexpected %q after label definition", ErrMalformedOperand, fields[1]), no)
		}
		if !isIdentifier(fields[0]) {
			return ln, atLine(fmt.Errorf("%w: bad label name %q", ErrMalformedOperand, fields[0]), no)
		}
		ln.kind = lineLabelDef
		ln.name = fields[0]
		return ln, nil
	}

	fields := strings.Fields(operandSplitter.Replace(line))
	if len(fields) == 0 {
		return ln, nil // nothing but separators
	}
	ln.kind = lineContent
	ln.mnemonic = fields[0]
	ln.operands = fields[1:]
	return ln, nil
}

// isIdentifier reports whether s is a well-formed label name: ASCII
// letters, digits and underscores, at most tinker.MaxLabelLen bytes.
func isIdentifier(s string) bool {
	if s == "" || len(s) > tinker.MaxLabelLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
