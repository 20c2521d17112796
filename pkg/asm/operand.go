package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/japanoise/numparse"

	"tinkasm/pkg/tinker"
)

// parseRegister accepts r0..r31 and returns the register index.
func parseRegister(tok string) (int, error) {
	if !isRegisterToken(tok) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRegister, tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n >= tinker.NumRegisters {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRegister, tok)
	}
	return n, nil
}

func parseRegisters(toks ...string) error {
	for _, tok := range toks {
		if _, err := parseRegister(tok); err != nil {
			return err
		}
	}
	return nil
}

// isRegisterToken reports whether tok has the shape of a register operand,
// r followed by digits. The index may still be out of range; parseRegister
// decides that.
func isRegisterToken(tok string) bool {
	return len(tok) > 1 && tok[0] == 'r' && isDigits(tok[1:])
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// parseLiteral64 parses a decimal, hex, octal or binary literal into a
// 64-bit value. A leading '-' negates the magnitude in two's complement.
func parseLiteral64(tok string) (uint64, error) {
	body, neg := strings.CutPrefix(tok, "-")
	if body == "" {
		return 0, fmt.Errorf("%w: %s", ErrMalformedOperand, tok)
	}
	v, err := numparse.UNumParse(body)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedOperand, tok)
	}
	if neg {
		return -uint64(v), nil
	}
	return uint64(v), nil
}

// parseSigned12 parses tok and checks it against the signed 12-bit window
// shared by relative branch offsets, mov immediates and memory
// displacements.
func parseSigned12(tok string) (int64, error) {
	body, neg := strings.CutPrefix(tok, "-")
	if body == "" {
		return 0, fmt.Errorf("%w: %s", ErrMalformedOperand, tok)
	}
	mag, err := numparse.UNumParse(body)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedOperand, tok)
	}
	// Check the magnitude before converting; int64 would wrap anything
	// past 2^63 back toward the window.
	limit := uint64(tinker.SignedImmMax)
	if neg {
		limit = uint64(-tinker.SignedImmMin)
	}
	if uint64(mag) > limit {
		return 0, fmt.Errorf("%w: %s not in [%d, %d]", ErrOutOfRange, tok, tinker.SignedImmMin, tinker.SignedImmMax)
	}
	v := int64(mag)
	if neg {
		v = -v
	}
	return v, nil
}

// parseUnsigned12 parses tok and checks the unsigned 12-bit window used by
// the arithmetic and shift immediates.
func parseUnsigned12(tok string) (uint64, error) {
	v, err := numparse.UNumParse(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedOperand, tok)
	}
	if v > tinker.UnsignedImmMax {
		return 0, fmt.Errorf("%w: %s not in [0, %d]", ErrOutOfRange, tok, tinker.UnsignedImmMax)
	}
	return uint64(v), nil
}

// parsePrivOp parses the operation selector of a priv instruction.
func parsePrivOp(tok string) (uint64, error) {
	v, err := numparse.UNumParse(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedOperand, tok)
	}
	if v > tinker.PrivMax {
		return 0, fmt.Errorf("%w: priv operation %s not in [0, %d]", ErrOutOfRange, tok, tinker.PrivMax)
	}
	return uint64(v), nil
}

// parseMemoryOperand splits a "(rN)(offset)" token into its base register
// and signed displacement.
func parseMemoryOperand(tok string) (int, int64, error) {
	mid := strings.Index(tok, ")(")
	if mid < 0 || tok[0] != '(' || tok[len(tok)-1] != ')' ||
		strings.Count(tok, "(") != 2 || strings.Count(tok, ")") != 2 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMalformedOperand, tok)
	}
	reg, err := parseRegister(tok[1:mid])
	if err != nil {
		return 0, 0, err
	}
	off, err := parseSigned12(tok[mid+2 : len(tok)-1])
	if err != nil {
		return 0, 0, err
	}
	return reg, off, nil
}

func isMemoryOperand(tok string) bool {
	return strings.HasPrefix(tok, "(")
}

// labelRef reports whether the operand list ends with a :NAME reference.
// A reference anywhere but the last position is malformed; the name is
// returned without the colon.
func labelRef(ops []string) (string, bool, error) {
	ref := -1
	for i, op := range ops {
		if strings.HasPrefix(op, ":") {
			if ref >= 0 {
				return "", false, fmt.Errorf("%w: multiple label references", ErrMalformedOperand)
			}
			ref = i
		}
	}
	if ref < 0 {
		return "", false, nil
	}
	if ref != len(ops)-1 {
		return "", false, fmt.Errorf("%w: label reference must be the last operand", ErrMalformedOperand)
	}
	name := ops[ref][1:]
	if !isIdentifier(name) {
		return "", false, fmt.Errorf("%w: bad label reference %q", ErrMalformedOperand, ops[ref])
	}
	return name, true, nil
}
