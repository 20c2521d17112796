package asm

import (
	"fmt"

	"tinkasm/pkg/tinker"
)

// pass1 walks the source once, assigning an address to every label and
// rejecting malformed code before anything is emitted. Data cells are laid
// out but not validated; their contents only matter to whoever loads the
// output.
func (a *Assembler) pass1(lines []string) error {
	lay := newLayout()

	for i, raw := range lines {
		no := i + 1
		ln, err := classifyLine(raw, no)
		if err != nil {
			return err
		}

		switch ln.kind {
		case lineBlank:
			continue
		case lineDirective:
			lay.enterDirective(ln.name)
			continue
		case lineLabelDef:
			if err := a.symbols.Define(ln.name, lay.pc); err != nil {
				return atLine(err, no)
			}
			continue
		}

		switch lay.section {
		case sectionNone:
			// Text before the first section marker is tolerated and skipped.
		case sectionData:
			lay.advance(tinker.DataCellSize)
		case sectionCode:
			if !isMnemonic(ln.mnemonic) {
				return atLine(fmt.Errorf("%w: %s", ErrInvalidInstruction, ln.mnemonic), no)
			}
			_, hasRef, err := labelRef(ln.operands)
			if err != nil {
				return atLine(err, no)
			}
			if err := validateInstruction(ln.mnemonic, ln.operands, hasRef); err != nil {
				return atLine(err, no)
			}
			size, _ := instructionSize(ln.mnemonic)
			lay.advance(size)
		}
	}

	return nil
}
