// Package tinker describes the Tinker machine as the assembler needs it:
// address-space layout, encoding widths, and the textual expansions of the
// pseudo-instructions.
package tinker

// Memory layout and encoding widths.
const (
	CodeBase     = 0x1000 // program text is loaded at 0x1000
	WordSize     = 4      // one encoded instruction
	DataCellSize = 8      // one .data cell

	NumRegisters = 32
	StackPointer = 31 // r31 holds the stack pointer by convention

	SignedImmMin   = -2048
	SignedImmMax   = 2047
	UnsignedImmMax = 4095
	PrivMax        = 4 // highest priv operation selector

	MaxLabelLen = 49
)
