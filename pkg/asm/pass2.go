package asm

import (
	"fmt"
	"strconv"
	"strings"

	"tinkasm/pkg/tinker"
)

// pass2 re-walks the source with the completed symbol table and builds the
// resolved output: label references substituted, branch offsets computed,
// macros expanded. It advances through the same layout and size model as
// pass 1, so every emitted line lands on the address pass 1 promised.
func (a *Assembler) pass2(lines []string) (*Program, error) {
	lay := newLayout()
	prog := &Program{}

	for i, raw := range lines {
		no := i + 1
		ln, err := classifyLine(raw, no)
		if err != nil {
			return nil, err
		}

		switch ln.kind {
		case lineBlank:
			continue
		case lineDirective:
			if lay.enterDirective(ln.name) {
				prog.Lines = append(prog.Lines, EmittedLine{Addr: lay.pc, Text: ln.name, Source: no})
			}
			continue
		case lineLabelDef:
			// Resolved in pass 1; definitions never reach the output.
			continue
		}

		switch lay.section {
		case sectionNone:
		case sectionData:
			cell, err := a.resolveData(ln)
			if err != nil {
				return nil, atLine(err, no)
			}
			prog.Lines = append(prog.Lines, EmittedLine{Addr: lay.pc, Text: "\t" + cell, Source: no})
			lay.advance(tinker.DataCellSize)
		case sectionCode:
			emitted, err := a.resolveInstruction(ln, lay.pc)
			if err != nil {
				return nil, atLine(err, no)
			}
			for j, text := range emitted {
				prog.Lines = append(prog.Lines, EmittedLine{
					Addr:   lay.pc + uint32(j)*tinker.WordSize,
					Text:   "\t" + text,
					Source: no,
				})
			}
			size, _ := instructionSize(ln.mnemonic)
			lay.advance(size)
		}
	}

	return prog, nil
}

// resolveData substitutes a trailing label reference in a data cell with
// its absolute decimal address. Cell contents are otherwise passed through
// untouched.
func (a *Assembler) resolveData(ln sourceLine) (string, error) {
	tokens := append([]string{ln.mnemonic}, ln.operands...)
	name, hasRef, err := labelRef(ln.operands)
	if err != nil {
		return "", err
	}
	if hasRef {
		addr, err := a.symbols.Resolve(name)
		if err != nil {
			return "", err
		}
		tokens[len(tokens)-1] = strconv.FormatUint(uint64(addr), 10)
	}
	return strings.Join(tokens, " "), nil
}

// resolveInstruction turns one code line into its final emitted form.
// Label references go first: a relative branch gets the computed offset,
// br and call get the absolute address in the target slot, and everything
// else gets the address substituted and then re-enters validation with
// the literal in place, which is where a 12-bit slot rejects a large
// address. After that, macros expand and primitives are re-emitted
// canonically.
func (a *Assembler) resolveInstruction(ln sourceLine, pc uint32) ([]string, error) {
	m := ln.mnemonic
	ops := ln.operands

	name, hasRef, err := labelRef(ops)
	if err != nil {
		return nil, err
	}
	if hasRef {
		addr, err := a.symbols.Resolve(name)
		if err != nil {
			return nil, err
		}
		if relativeBranchOps[m] {
			if err := validateInstruction(m, ops, true); err != nil {
				return nil, err
			}
			off, err := branchOffset(m, int64(addr)-int64(pc))
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("brr %d", off)}, nil
		}
		if oneRegisterOps[m] {
			// br/call jump to the label's absolute address; the slot
			// holds a register only in the unreferenced form.
			if err := validateInstruction(m, ops, true); err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s %d", m, addr)}, nil
		}
		ops = append(append([]string{}, ops[:len(ops)-1]...), strconv.FormatUint(uint64(addr), 10))
	}

	if err := validateInstruction(m, ops, false); err != nil {
		return nil, err
	}

	switch {
	case macroOps[m]:
		return expandMacro(m, ops)
	case m == "brr_l" || m == "brr_r":
		v, err := parseSigned12(ops[0])
		if err != nil {
			return nil, err
		}
		off, err := branchOffset(m, v)
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("brr %d", off)}, nil
	default:
		return []string{renderInstruction(m, ops)}, nil
	}
}

// branchOffset applies the directional constraint of a relative branch and
// checks the encodable window. brr_l forces a non-positive offset and
// brr_r a non-negative one by negating a mismatched sign; plain brr takes
// the offset as it comes.
func branchOffset(m string, off int64) (int64, error) {
	switch {
	case m == "brr_l" && off > 0:
		off = -off
	case m == "brr_r" && off < 0:
		off = -off
	}
	if off < tinker.SignedImmMin || off > tinker.SignedImmMax {
		return 0, fmt.Errorf("%w: branch offset %d not in [%d, %d]", ErrOutOfRange, off, tinker.SignedImmMin, tinker.SignedImmMax)
	}
	return off, nil
}

// renderInstruction formats a resolved primitive in the canonical
// "op a, b, c" form.
func renderInstruction(m string, ops []string) string {
	if len(ops) == 0 {
		return m
	}
	return m + " " + strings.Join(ops, ", ")
}

// expandMacro lowers a validated macro line into its primitive sequence.
func expandMacro(m string, ops []string) ([]string, error) {
	switch m {
	case "halt":
		return tinker.ExpandHalt(), nil
	case "clr":
		rd, err := parseRegister(ops[0])
		if err != nil {
			return nil, err
		}
		return tinker.ExpandClr(rd), nil
	case "push":
		rd, err := parseRegister(ops[0])
		if err != nil {
			return nil, err
		}
		return tinker.ExpandPush(rd), nil
	case "pop":
		rd, err := parseRegister(ops[0])
		if err != nil {
			return nil, err
		}
		return tinker.ExpandPop(rd), nil
	case "in", "out":
		rd, err := parseRegister(ops[0])
		if err != nil {
			return nil, err
		}
		rs, err := parseRegister(ops[1])
		if err != nil {
			return nil, err
		}
		if m == "in" {
			return tinker.ExpandIn(rd, rs), nil
		}
		return tinker.ExpandOut(rd, rs), nil
	default: // ld
		rd, err := parseRegister(ops[0])
		if err != nil {
			return nil, err
		}
		v, err := parseLiteral64(ops[1])
		if err != nil {
			return nil, err
		}
		return tinker.ExpandLd(rd, v), nil
	}
}
