package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Field masks of an instruction word.
const (
	nnnMask = 0x0FFF
	kkMask  = 0x00FF
	nMask   = 0x000F
)

// shapes maps the opcode entries of the shared CHIP-8 opcode table to the
// instruction shape they encode.
var shapes = map[chip8cpu.OpcodeInfo]Op{
	chip8cpu.Opcode00E0: Cls,
	chip8cpu.Opcode00EE: Ret,
	chip8cpu.Opcode1000: Jp,
	chip8cpu.Opcode2000: Call,
	chip8cpu.Opcode3000: Se,
	chip8cpu.Opcode4000: Sne,
	chip8cpu.Opcode5000: SeVxVy,
	chip8cpu.Opcode6000: LdVx,
	chip8cpu.Opcode7000: Add,
	chip8cpu.Opcode8000: LdVxVy,
	chip8cpu.Opcode8001: Or,
	chip8cpu.Opcode8002: And,
	chip8cpu.Opcode8003: Xor,
	chip8cpu.Opcode8004: AddVxVy,
	chip8cpu.Opcode8005: Sub,
	chip8cpu.Opcode8006: Shr,
	chip8cpu.Opcode8007: Subn,
	chip8cpu.Opcode800E: Shl,
	chip8cpu.Opcode9000: SneVxVy,
	chip8cpu.OpcodeA000: LdI,
	chip8cpu.OpcodeB000: JpV0,
	chip8cpu.OpcodeC000: Rnd,
	chip8cpu.OpcodeD000: Drw,
	chip8cpu.OpcodeE09E: Skp,
	chip8cpu.OpcodeE0A1: Sknp,
	chip8cpu.OpcodeF007: LdVxDT,
	chip8cpu.OpcodeF00A: LdVxK,
	chip8cpu.OpcodeF015: LdDTVx,
	chip8cpu.OpcodeF018: LdSTVx,
	chip8cpu.OpcodeF01E: AddIVx,
	chip8cpu.OpcodeF029: LdFVx,
	chip8cpu.OpcodeF033: LdBVx,
	chip8cpu.OpcodeF055: LdIVx,
	chip8cpu.OpcodeF065: LdVxI,
}

// lookup returns the opcode table entry matching the word.
func lookup(word uint16) (chip8cpu.Opcode, bool) {
	for _, op := range chip8cpu.Opcodes[word>>12] {
		if op.Info.Mask&word == op.Info.Value {
			return op, true
		}
	}
	return chip8cpu.Opcode{}, false
}

// Decode decodes a 16-bit instruction word. It is a pure function, words
// outside the classic instruction table decode to an Unknown instruction that
// still carries the raw word.
func Decode(word uint16) Instruction {
	opcode, ok := lookup(word)
	if !ok {
		return Instruction{Op: Unknown, Word: word}
	}
	op := shapes[opcode.Info]

	x := uint8(word>>8) & nMask
	y := uint8(word>>4) & nMask
	n := uint8(word & nMask)
	kk := uint8(word & kkMask)
	nnn := word & nnnMask

	ins := Instruction{Op: op, Word: word}
	switch op {
	case Cls, Ret:
	case Jp, Call, LdI, JpV0:
		ins.NNN = nnn
	case Se, Sne, LdVx, Add, Rnd:
		ins.X, ins.KK = x, kk
	case SeVxVy, SneVxVy, LdVxVy, Or, And, Xor, AddVxVy, Sub, Subn:
		ins.X, ins.Y = x, y
	case Drw:
		ins.X, ins.Y, ins.N = x, y, n
	default:
		// shifts, key skips and the Fx group operate on Vx only
		ins.X = x
	}
	return ins
}

// DecodeAt decodes the big-endian instruction word starting at offset of
// data. It returns false if fewer than two bytes are available.
func DecodeAt(data []byte, offset int) (Instruction, bool) {
	if offset < 0 || offset+1 >= len(data) {
		return Instruction{}, false
	}
	word := uint16(data[offset])<<8 | uint16(data[offset+1])
	return Decode(word), true
}
