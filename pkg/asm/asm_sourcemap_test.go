package asm

import (
	"reflect"
	"testing"
)

func TestAssembleSourceMap(t *testing.T) {
	code := `; banner
.code
:START
	addi r1, 5
	push r2
	brr :START
.data
	42
`
	// Line 1: comment, line 2: .code, line 3: label.
	// Line 4: addi at 0x1000.
	// Line 5: push at 0x1004, expanding to two words (0x1004, 0x1008).
	// Line 6: brr at 0x100C.
	// Line 7: .data (no address of its own in the map).
	// Line 8: the 42 cell at 0x1010.

	prog, err := Assemble(code)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	want := map[uint32]int{
		0x1000: 4,
		0x1004: 5,
		0x1008: 5,
		0x100C: 6,
		0x1010: 8,
	}
	if got := prog.SourceMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("SourceMap() = %v, want %v", got, want)
	}
}

func TestSourceMapSpansMacroExpansion(t *testing.T) {
	prog, err := Assemble(".code\n\tld r3, 7\n")
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	m := prog.SourceMap()
	if len(m) != 12 {
		t.Fatalf("SourceMap() has %d entries, want 12", len(m))
	}
	for i := 0; i < 12; i++ {
		addr := uint32(0x1000 + 4*i)
		if m[addr] != 2 {
			t.Errorf("SourceMap()[0x%04X] = %d; want 2", addr, m[addr])
		}
	}
}
