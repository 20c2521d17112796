package asm

import (
	"reflect"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line    string
		want    sourceLine
		wantErr bool
	}{
		{
			"addi r1, 5",
			sourceLine{no: 1, kind: lineContent, mnemonic: "addi", operands: []string{"r1", "5"}},
			false,
		},
		{
			"  mov r1 r2  ",
			sourceLine{no: 1, kind: lineContent, mnemonic: "mov", operands: []string{"r1", "r2"}},
			false,
		},
		{
			"\tmov (r31)(0), r3",
			sourceLine{no: 1, kind: lineContent, mnemonic: "mov", operands: []string{"(r31)(0)", "r3"}},
			false,
		},
		{
			"\tbrr :LOOP",
			sourceLine{no: 1, kind: lineContent, mnemonic: "brr", operands: []string{":LOOP"}},
			false,
		},
		{
			"",
			sourceLine{no: 1, kind: lineBlank},
			false,
		},
		{
			"   \t ",
			sourceLine{no: 1, kind: lineBlank},
			false,
		},
		{
			"; a whole-line comment",
			sourceLine{no: 1, kind: lineBlank},
			false,
		},
		{
			",",
			sourceLine{no: 1, kind: lineBlank},
			false,
		},
		{
			".code",
			sourceLine{no: 1, kind: lineDirective, name: ".code"},
			false,
		},
		{
			"  .data  ",
			sourceLine{no: 1, kind: lineDirective, name: ".data"},
			false,
		},
		{
			".data trailing words",
			sourceLine{no: 1, kind: lineDirective, name: ".data"},
			false,
		},
		{
			":LOOP",
			sourceLine{no: 1, kind: lineLabelDef, name: "LOOP"},
			false,
		},
		{
			"\t:x_1",
			sourceLine{no: 1, kind: lineLabelDef, name: "x_1"},
			false,
		},
		// Invalid cases
		{":", sourceLine{}, true},
		{":LOOP halt", sourceLine{}, true},
		{":bad-name", sourceLine{}, true},
	}

	for _, tc := range tests {
		got, err := classifyLine(tc.line, 1)
		if (err != nil) != tc.wantErr {
			t.Errorf("classifyLine(%q) error = %v, wantErr %v", tc.line, err, tc.wantErr)
			continue
		}
		if tc.wantErr {
			continue
		}
		if got.kind != tc.want.kind {
			t.Errorf("classifyLine(%q) kind = %d, want %d", tc.line, got.kind, tc.want.kind)
		}
		if got.name != tc.want.name {
			t.Errorf("classifyLine(%q) name = %q, want %q", tc.line, got.name, tc.want.name)
		}
		if got.mnemonic != tc.want.mnemonic {
			t.Errorf("classifyLine(%q) mnemonic = %q, want %q", tc.line, got.mnemonic, tc.want.mnemonic)
		}
		if !reflect.DeepEqual(got.operands, tc.want.operands) && !(len(got.operands) == 0 && len(tc.want.operands) == 0) {
			t.Errorf("classifyLine(%q) operands = %v, want %v", tc.line, got.operands, tc.want.operands)
		}
	}
}
