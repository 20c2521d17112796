package tinker

import "fmt"

// ExpandClr rewrites clr rd into the xor that zeroes the register.
func ExpandClr(rd int) []string {
	return []string{fmt.Sprintf("xor r%d, r%d, r%d", rd, rd, rd)}
}

// ExpandHalt rewrites halt into the priv stop operation.
func ExpandHalt() []string {
	return []string{"priv r0, r0, r0, 0"}
}

func ExpandIn(rd, rs int) []string {
	return []string{fmt.Sprintf("priv r%d, r%d, r0, 3", rd, rs)}
}

func ExpandOut(rd, rs int) []string {
	return []string{fmt.Sprintf("priv r%d, r%d, r0, 4", rd, rs)}
}

// ExpandPush grows the stack before the store. ExpandPop loads before the
// stack shrinks. Callers relying on the opposite order corrupt the
// neighboring slot.
func ExpandPush(rd int) []string {
	return []string{
		fmt.Sprintf("subi r%d, %d", StackPointer, DataCellSize),
		fmt.Sprintf("mov (r%d)(0), r%d", StackPointer, rd),
	}
}

func ExpandPop(rd int) []string {
	return []string{
		fmt.Sprintf("mov r%d, (r%d)(0)", rd, StackPointer),
		fmt.Sprintf("addi r%d, %d", StackPointer, DataCellSize),
	}
}

// ldChunkShifts is the left shift applied after each of the first five
// chunks; the last chunk is added without a trailing shift.
var ldChunkShifts = [5]uint{12, 12, 12, 12, 4}

// LdChunks splits v into the six immediates of the ld expansion: bits
// 52-63, 40-51, 28-39, 16-27, 4-15 and 0-3. Shifting and adding the chunks
// in program order reconstructs v exactly.
func LdChunks(v uint64) [6]uint64 {
	return [6]uint64{
		(v >> 52) & 0xFFF,
		(v >> 40) & 0xFFF,
		(v >> 28) & 0xFFF,
		(v >> 16) & 0xFFF,
		(v >> 4) & 0xFFF,
		v & 0xF,
	}
}

// ExpandLd builds the 12-instruction sequence that loads a full 64-bit
// value into rd. r0 is zeroed first so the opening addi can source from it.
func ExpandLd(rd int, v uint64) []string {
	chunks := LdChunks(v)
	out := make([]string, 0, 12)
	out = append(out, "xor r0, r0, r0")
	out = append(out, fmt.Sprintf("addi r%d, r0, %d", rd, chunks[0]))
	for i, shift := range ldChunkShifts {
		out = append(out, fmt.Sprintf("shftli r%d, %d", rd, shift))
		out = append(out, fmt.Sprintf("addi r%d, r%d, %d", rd, rd, chunks[i+1]))
	}
	return out
}
