package asm

import "tinkasm/pkg/tinker"

// Primitive mnemonics grouped by operand shape. mov and priv have bespoke
// forms and are validated by name.
var zeroOperandOps = map[string]bool{
	"return": true,
}

// br and call take a register, or a label reference that pass 2 rewrites
// to the label's absolute address.
var oneRegisterOps = map[string]bool{
	"br":   true,
	"call": true,
}

var twoRegisterOps = map[string]bool{
	"not":  true,
	"brnz": true,
}

var threeRegisterOps = map[string]bool{
	"add":   true,
	"sub":   true,
	"mul":   true,
	"div":   true,
	"and":   true,
	"or":    true,
	"xor":   true,
	"shftr": true,
	"shftl": true,
	"addf":  true,
	"subf":  true,
	"mulf":  true,
	"divf":  true,
	"brgt":  true,
}

// addi and subi accept both "op rd, imm" and "op rd, rs, imm"; the shift
// immediates only the two-operand form.
var addImmediateOps = map[string]bool{
	"addi": true,
	"subi": true,
}

var shiftImmediateOps = map[string]bool{
	"shftri": true,
	"shftli": true,
}

// brr takes a register or a signed offset. The directional variants take a
// label or a signed offset, never a register, and lower to plain brr on
// emission.
var relativeBranchOps = map[string]bool{
	"brr":   true,
	"brr_l": true,
	"brr_r": true,
}

// Pseudo-instructions that expand into primitive sequences in pass 2.
var macroOps = map[string]bool{
	"ld":   true,
	"push": true,
	"pop":  true,
	"in":   true,
	"out":  true,
	"clr":  true,
	"halt": true,
}

// isMnemonic reports whether m names any recognized instruction or macro.
func isMnemonic(m string) bool {
	return zeroOperandOps[m] || oneRegisterOps[m] || twoRegisterOps[m] ||
		threeRegisterOps[m] || addImmediateOps[m] || shiftImmediateOps[m] ||
		relativeBranchOps[m] || macroOps[m] || m == "mov" || m == "priv"
}

// instructionSize returns the byte footprint of one source instruction.
// Macros carry the size of their full expansion; every primitive is one
// word. Pass 1 assigns label addresses from this table and pass 2 computes
// branch offsets from it, so the two can never disagree.
func instructionSize(m string) (uint32, bool) {
	switch {
	case !isMnemonic(m):
		return 0, false
	case m == "ld":
		return 12 * tinker.WordSize, true
	case m == "push", m == "pop":
		return 2 * tinker.WordSize, true
	default:
		return tinker.WordSize, true
	}
}
