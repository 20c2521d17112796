package asm

import "tinkasm/pkg/tinker"

type section int

const (
	sectionNone section = iota
	sectionCode
	sectionData
)

// layout is the address cursor both passes walk. Every .code directive
// restarts the text stream at tinker.CodeBase; .data switches grammar and
// cell size without moving the cursor. Keeping the transition in one place
// is what guarantees pass 2 replays pass 1's addresses exactly.
type layout struct {
	section section
	pc      uint32
}

func newLayout() layout {
	return layout{section: sectionNone, pc: tinker.CodeBase}
}

// enterDirective applies a directive line and reports whether name is one
// of the recognized section markers. Anything else is ignored.
func (l *layout) enterDirective(name string) bool {
	switch name {
	case ".code":
		l.section = sectionCode
		l.pc = tinker.CodeBase
		return true
	case ".data":
		l.section = sectionData
		return true
	default:
		return false
	}
}

func (l *layout) advance(n uint32) {
	l.pc += n
}
