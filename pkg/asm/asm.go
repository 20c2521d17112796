// Package asm implements a two-pass assembler for the Tinker instruction
// set. Pass 1 scans the source, assigns an address to every label and
// validates each instruction; pass 2 substitutes label references,
// computes relative branch offsets, expands the pseudo-instructions and
// emits the resolved program as text. Any error is fatal: the assembler
// never produces partial output.
package asm

import (
	"fmt"
	"io"
	"strings"
)

// Assembler drives the two passes over one source text. An Assembler can
// be reused; each call to Assemble starts from a fresh symbol table.
type Assembler struct {
	symbols *SymbolTable
}

func NewAssembler() *Assembler {
	return &Assembler{symbols: NewSymbolTable()}
}

// Assemble runs both passes over source with a throwaway Assembler.
func Assemble(source string) (*Program, error) {
	return NewAssembler().Assemble(source)
}

// Assemble translates source into its fully resolved form. On any error
// the returned program is nil and the error names the offending source
// line.
func (a *Assembler) Assemble(source string) (*Program, error) {
	a.symbols = NewSymbolTable()

	lines := strings.Split(source, "\n")

	if err := a.pass1(lines); err != nil {
		return nil, err
	}
	return a.pass2(lines)
}

// Symbols exposes the label table populated by the last Assemble.
func (a *Assembler) Symbols() *SymbolTable {
	return a.symbols
}

// EmittedLine is one line of resolved output together with the address the
// size model assigned it and the source line it came from.
type EmittedLine struct {
	Addr   uint32
	Text   string // exact output text; instructions and data carry the leading tab
	Source int    // 1-based line in the input
}

// Program is the fully resolved output stream.
type Program struct {
	Lines []EmittedLine
}

// Text renders the program, one emitted line per output line.
func (p *Program) Text() string {
	var sb strings.Builder
	for _, ln := range p.Lines {
		sb.WriteString(ln.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo streams the program to w.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, ln := range p.Lines {
		n, err := fmt.Fprintln(w, ln.Text)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SourceMap maps each emitted instruction or data address back to the
// source line that produced it. Section markers are skipped.
func (p *Program) SourceMap() map[uint32]int {
	m := make(map[uint32]int, len(p.Lines))
	for _, ln := range p.Lines {
		if strings.HasPrefix(ln.Text, "\t") {
			m[ln.Addr] = ln.Source
		}
	}
	return m
}
