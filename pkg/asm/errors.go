package asm

import (
	"errors"
	"fmt"
)

// The assembler's failure taxonomy. Every one of these is fatal: the first
// occurrence aborts the run and no output is produced. Callers can match
// with errors.Is.
var (
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrInvalidRegister    = errors.New("invalid register")
	ErrOutOfRange         = errors.New("value out of range")
	ErrMalformedOperand   = errors.New("malformed operand")
	ErrUnknownLabel       = errors.New("unknown label")
	ErrDuplicateLabel     = errors.New("duplicate label")
)

// atLine pins an error to the 1-based source line it was raised on.
func atLine(err error, no int) error {
	return fmt.Errorf("%w on line %d", err, no)
}
