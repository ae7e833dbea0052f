// Package chip8 provides the CHIP-8 instruction decoder.
//
// # Instruction Format
//
// Every CHIP-8 instruction is a big-endian 16-bit word. The decoder splits it
// into four nibbles and two composite fields:
//
//	bits 12-15  family (op group)
//	bits  8-11  x      (register index)
//	bits  4-7   y      (register index)
//	bits  0-3   n      (literal nibble)
//	bits  0-7   kk     (literal byte)
//	bits  0-11  nnn    (address)
//
// Dispatch is a pattern match on (family, x, y, n). Families 0x8, 0xE and 0xF
// share their top nibble between several instructions and are disambiguated by
// n or by the low byte. Any combination outside the classic table decodes to
// Unknown, including the legacy 0nnn machine code call.
//
// # Usage Example
//
//	ins := chip8.Decode(0x8AB4)
//	// ins.Op == chip8.AddVxVy, ins.X == 0xA, ins.Y == 0xB
//	fmt.Println(ins) // add VA, VB
//
// # Batch Analysis
//
// Analyze decodes all aligned words of a program image concurrently and
// returns a histogram. It is meant for load time diagnostics only; execution
// always decodes one instruction at a time since every instruction may depend
// on the state left by the previous one.
package chip8
