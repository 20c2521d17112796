package asm

import (
	"errors"
	"strings"
	"testing"
)

// symbolsAfterPass1 runs pass 1 alone and returns the populated table.
func symbolsAfterPass1(t *testing.T, code string) *SymbolTable {
	t.Helper()
	a := NewAssembler()
	if err := a.pass1(strings.Split(code, "\n")); err != nil {
		t.Fatalf("pass1 failed: %v", err)
	}
	return a.Symbols()
}

func TestPass1LabelAddresses(t *testing.T) {
	code := `.code
:START
	addi r1, 5
	ld r2, 100
:AFTER_LD
	push r3
	pop r4
:END
	halt
.data
:TABLE
	42
:NEXT
	7
`
	tab := symbolsAfterPass1(t, code)

	tests := []struct {
		name string
		addr uint32
	}{
		{"START", 4096},    // code base
		{"AFTER_LD", 4148}, // addi (4) + ld (48)
		{"END", 4164},      // + push (8) + pop (8)
		{"TABLE", 4168},    // + halt (4); .data does not reset the cursor
		{"NEXT", 4176},     // one 8-byte cell later
	}
	for _, tc := range tests {
		addr, err := tab.Resolve(tc.name)
		if err != nil {
			t.Errorf("Resolve(%s) failed: %v", tc.name, err)
			continue
		}
		if addr != tc.addr {
			t.Errorf("label %s at %d, want %d", tc.name, addr, tc.addr)
		}
	}
}

func TestPass1CodeDirectiveResetsCursor(t *testing.T) {
	code := `.code
	addi r1, 1
	addi r2, 2
.code
:RESTART
	halt
`
	tab := symbolsAfterPass1(t, code)
	if addr, err := tab.Resolve("RESTART"); err != nil || addr != 4096 {
		t.Errorf("RESTART at %d (err %v), want 4096 after second .code", addr, err)
	}
}

func TestPass1DataDoesNotResetCursor(t *testing.T) {
	code := `.data
:D0
	5
:D1
	6
.data
:D2
	7
`
	tab := symbolsAfterPass1(t, code)
	for name, want := range map[string]uint32{"D0": 4096, "D1": 4104, "D2": 4112} {
		if addr, err := tab.Resolve(name); err != nil || addr != want {
			t.Errorf("%s at %d (err %v), want %d", name, addr, err, want)
		}
	}
}

func TestPass1PreambleTolerated(t *testing.T) {
	code := `Tinker demo program
not yet in any section
.code
:L
	halt
`
	tab := symbolsAfterPass1(t, code)
	if addr, err := tab.Resolve("L"); err != nil || addr != 4096 {
		t.Errorf("L at %d (err %v), want 4096", addr, err)
	}
}

func TestPass1UnrecognizedDirectiveIgnored(t *testing.T) {
	code := `.code
.align
	addi r1, 1
:AFTER
	halt
`
	tab := symbolsAfterPass1(t, code)
	if addr, err := tab.Resolve("AFTER"); err != nil || addr != 4100 {
		t.Errorf("AFTER at %d (err %v), want 4100", addr, err)
	}
}

func TestPass1Errors(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{
			"duplicate label",
			".code\n:L\n\thalt\n:L\n\thalt\n",
			ErrDuplicateLabel,
		},
		{
			"unknown mnemonic",
			".code\n\tfrob r1\n",
			ErrInvalidInstruction,
		},
		{
			"bad register",
			".code\n\tadd r1, r2, r99\n",
			ErrInvalidRegister,
		},
		{
			"unsigned immediate too large",
			".code\n\taddi r1, 4096\n",
			ErrOutOfRange,
		},
		{
			"branch offset too negative",
			".code\n\tbrr -2049\n",
			ErrOutOfRange,
		},
		{
			"missing operand",
			".code\n\tadd r1, r2\n",
			ErrMalformedOperand,
		},
		{
			"label definition with trailing token",
			".code\n:L halt\n",
			ErrMalformedOperand,
		},
		{
			"label reference not last",
			".code\n\tmov :L, r1\n",
			ErrMalformedOperand,
		},
		{
			"directional branch with register",
			".code\n\tbrr_l r5\n",
			ErrMalformedOperand,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAssembler()
			err := a.pass1(strings.Split(tc.code, "\n"))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("pass1 error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPass1ErrorNamesLine(t *testing.T) {
	a := NewAssembler()
	err := a.pass1(strings.Split(".code\n\taddi r1, 5\n\taddi r1, 4096\n", "\n"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "on line 3") {
		t.Errorf("error %q does not name line 3", err)
	}
}
