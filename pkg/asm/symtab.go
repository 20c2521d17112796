package asm

import (
	"fmt"
	"sort"
	"strings"
)

// SymbolTable maps label names to the addresses pass 1 assigned them.
// Pass 1 is the only writer; pass 2 treats the table as read-only.
type SymbolTable struct {
	labels map[string]uint32
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{labels: make(map[string]uint32)}
}

// Define records name at addr. Redefining a name fails with
// ErrDuplicateLabel.
func (t *SymbolTable) Define(name string, addr uint32) error {
	if _, exists := t.labels[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateLabel, name)
	}
	t.labels[name] = addr
	return nil
}

// Resolve returns the address recorded for name, or ErrUnknownLabel.
func (t *SymbolTable) Resolve(name string) (uint32, error) {
	addr, ok := t.labels[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLabel, name)
	}
	return addr, nil
}

func (t *SymbolTable) Len() int {
	return len(t.labels)
}

// Names returns the defined labels in sorted order.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.labels))
	for name := range t.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Labels returns a copy of the table as a plain name to address map.
func (t *SymbolTable) Labels() map[string]uint32 {
	out := make(map[string]uint32, len(t.labels))
	for name, addr := range t.labels {
		out[name] = addr
	}
	return out
}

// String returns a deterministically ordered dump of the table.
func (t *SymbolTable) String() string {
	var sb strings.Builder
	for _, name := range t.Names() {
		fmt.Fprintf(&sb, "%-20s 0x%04X\n", name, t.labels[name])
	}
	return sb.String()
}
