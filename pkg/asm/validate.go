package asm

import "fmt"

type movForm int

const (
	movRegToReg movForm = iota
	movRegToImmediate
	movRegToMemory // store: mov (rd)(off), rs
	movMemoryToReg // load:  mov rd, (rs)(off)
)

// movOperandForm classifies a mov by the position of the parenthesized
// memory operand. With no memory operand, a register-shaped second operand
// means register to register, anything else an immediate.
func movOperandForm(ops []string) (movForm, error) {
	if len(ops) != 2 {
		return 0, fmt.Errorf("%w: mov expects 2 operands", ErrMalformedOperand)
	}
	switch {
	case isMemoryOperand(ops[0]) && isMemoryOperand(ops[1]):
		return 0, fmt.Errorf("%w: mov cannot address memory on both sides", ErrMalformedOperand)
	case isMemoryOperand(ops[0]):
		return movRegToMemory, nil
	case isMemoryOperand(ops[1]):
		return movMemoryToReg, nil
	case isRegisterToken(ops[1]):
		return movRegToReg, nil
	default:
		return movRegToImmediate, nil
	}
}

type brrForm int

const (
	brrRegisterRelative brrForm = iota
	brrLiteralRelative
)

// brrOperandForm classifies the sole operand of a relative branch.
func brrOperandForm(tok string) brrForm {
	if isRegisterToken(tok) {
		return brrRegisterRelative
	}
	return brrLiteralRelative
}

// validateInstruction checks arity, register indices and literal ranges
// for one content line in the code section. hasRef marks a line whose last
// operand is a label reference standing in for a literal or a branch
// target; literal slots are range-checked after substitution in pass 2.
// Both passes run the same checks, so an invalid program is rejected
// before any output exists.
func validateInstruction(m string, ops []string, hasRef bool) error {
	switch {
	case zeroOperandOps[m]:
		if hasRef || len(ops) != 0 {
			return fmt.Errorf("%w: %s expects no operands", ErrMalformedOperand, m)
		}
		return nil

	case oneRegisterOps[m]:
		if len(ops) != 1 {
			return fmt.Errorf("%w: %s expects one operand", ErrMalformedOperand, m)
		}
		if hasRef {
			// br/call branch to a label's absolute address; pass 2
			// substitutes it.
			return nil
		}
		_, err := parseRegister(ops[0])
		return err

	case twoRegisterOps[m]:
		if hasRef || len(ops) != 2 {
			return fmt.Errorf("%w: %s expects two registers", ErrMalformedOperand, m)
		}
		return parseRegisters(ops...)

	case threeRegisterOps[m]:
		if hasRef || len(ops) != 3 {
			return fmt.Errorf("%w: %s expects three registers", ErrMalformedOperand, m)
		}
		return parseRegisters(ops...)

	case addImmediateOps[m]:
		if len(ops) != 2 && len(ops) != 3 {
			return fmt.Errorf("%w: %s expects rd[, rs], imm", ErrMalformedOperand, m)
		}
		if err := parseRegisters(ops[:len(ops)-1]...); err != nil {
			return err
		}
		if hasRef {
			return nil
		}
		_, err := parseUnsigned12(ops[len(ops)-1])
		return err

	case shiftImmediateOps[m]:
		if len(ops) != 2 {
			return fmt.Errorf("%w: %s expects rd, imm", ErrMalformedOperand, m)
		}
		if _, err := parseRegister(ops[0]); err != nil {
			return err
		}
		if hasRef {
			return nil
		}
		_, err := parseUnsigned12(ops[1])
		return err

	case relativeBranchOps[m]:
		return validateRelativeBranch(m, ops, hasRef)

	case m == "mov":
		return validateMov(ops, hasRef)

	case m == "priv":
		if len(ops) != 4 {
			return fmt.Errorf("%w: priv expects rd, rs, rt, op", ErrMalformedOperand)
		}
		if err := parseRegisters(ops[:3]...); err != nil {
			return err
		}
		if hasRef {
			return nil
		}
		_, err := parsePrivOp(ops[3])
		return err

	case macroOps[m]:
		return validateMacro(m, ops, hasRef)

	default:
		return fmt.Errorf("%w: %s", ErrInvalidInstruction, m)
	}
}

func validateRelativeBranch(m string, ops []string, hasRef bool) error {
	if len(ops) != 1 {
		return fmt.Errorf("%w: %s expects one operand", ErrMalformedOperand, m)
	}
	if hasRef {
		return nil
	}
	if brrOperandForm(ops[0]) == brrRegisterRelative {
		// Only plain brr can branch by register contents.
		if m != "brr" {
			return fmt.Errorf("%w: %s cannot take a register", ErrMalformedOperand, m)
		}
		_, err := parseRegister(ops[0])
		return err
	}
	_, err := parseSigned12(ops[0])
	return err
}

func validateMov(ops []string, hasRef bool) error {
	form, err := movOperandForm(ops)
	if err != nil {
		return err
	}
	switch form {
	case movRegToReg:
		return parseRegisters(ops...)
	case movRegToImmediate:
		if _, err := parseRegister(ops[0]); err != nil {
			return err
		}
		if hasRef {
			return nil
		}
		_, err := parseSigned12(ops[1])
		return err
	case movRegToMemory:
		if hasRef {
			return fmt.Errorf("%w: store source must be a register", ErrMalformedOperand)
		}
		if _, _, err := parseMemoryOperand(ops[0]); err != nil {
			return err
		}
		_, err := parseRegister(ops[1])
		return err
	default: // movMemoryToReg
		if _, err := parseRegister(ops[0]); err != nil {
			return err
		}
		_, _, err := parseMemoryOperand(ops[1])
		return err
	}
}

func validateMacro(m string, ops []string, hasRef bool) error {
	switch m {
	case "halt":
		if hasRef || len(ops) != 0 {
			return fmt.Errorf("%w: halt expects no operands", ErrMalformedOperand)
		}
		return nil
	case "clr", "push", "pop":
		if hasRef || len(ops) != 1 {
			return fmt.Errorf("%w: %s expects one register", ErrMalformedOperand, m)
		}
		_, err := parseRegister(ops[0])
		return err
	case "in", "out":
		if hasRef || len(ops) != 2 {
			return fmt.Errorf("%w: %s expects two registers", ErrMalformedOperand, m)
		}
		return parseRegisters(ops...)
	default: // ld
		if len(ops) != 2 {
			return fmt.Errorf("%w: ld expects rd, value", ErrMalformedOperand)
		}
		if _, err := parseRegister(ops[0]); err != nil {
			return err
		}
		if hasRef {
			return nil
		}
		_, err := parseLiteral64(ops[1])
		return err
	}
}
