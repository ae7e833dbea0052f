package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is a decoded CHIP-8 instruction. Op selects the variant, the
// operand fields that the variant does not use are zero.
type Instruction struct {
	Op   Op
	X    uint8  // register index, bits 8-11
	Y    uint8  // register index, bits 4-7
	N    uint8  // nibble, bits 0-3
	KK   uint8  // byte, bits 0-7
	NNN  uint16 // address, bits 0-11
	Word uint16 // raw instruction word
}

// mnemonics maps every instruction shape to the shared CHIP-8 instruction
// definition that carries its assembler mnemonic.
var mnemonics = buildMnemonics()

func buildMnemonics() [opCount]*chip8cpu.Instruction {
	var table [opCount]*chip8cpu.Instruction
	for _, opcodes := range chip8cpu.Opcodes {
		for _, opcode := range opcodes {
			table[shapes[opcode.Info]] = opcode.Instruction
		}
	}
	table[Unknown] = nil
	return table
}

// Name returns the assembler mnemonic of the instruction.
// Unknown instructions have no mnemonic and return an empty string.
func (i Instruction) Name() string {
	if int(i.Op) >= len(mnemonics) {
		return ""
	}
	ins := mnemonics[i.Op]
	if ins == nil {
		return ""
	}
	return ins.Name
}

// String returns the instruction in assembler notation, unknown words are
// printed as a data word.
func (i Instruction) String() string {
	name := i.Name()
	if name == "" {
		return fmt.Sprintf(".word $%04X", i.Word)
	}
	if params := i.operands(); params != "" {
		return name + " " + params
	}
	return name
}

// operands formats the operands of the instruction.
func (i Instruction) operands() string {
	switch i.Op {
	case Jp, Call:
		return fmt.Sprintf("$%03X", i.NNN)
	case JpV0:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case LdI:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case Se, Sne, LdVx, Add, Rnd:
		return fmt.Sprintf("V%X, $%02X", i.X, i.KK)
	case SeVxVy, SneVxVy, LdVxVy, Or, And, Xor, AddVxVy, Sub, Subn:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case Shr, Shl, Skp, Sknp:
		return fmt.Sprintf("V%X", i.X)
	case Drw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	case LdVxDT:
		return fmt.Sprintf("V%X, DT", i.X)
	case LdVxK:
		return fmt.Sprintf("V%X, K", i.X)
	case LdDTVx:
		return fmt.Sprintf("DT, V%X", i.X)
	case LdSTVx:
		return fmt.Sprintf("ST, V%X", i.X)
	case AddIVx:
		return fmt.Sprintf("I, V%X", i.X)
	case LdFVx:
		return fmt.Sprintf("F, V%X", i.X)
	case LdBVx:
		return fmt.Sprintf("B, V%X", i.X)
	case LdIVx:
		return fmt.Sprintf("[I], V%X", i.X)
	case LdVxI:
		return fmt.Sprintf("V%X, [I]", i.X)
	default:
		return ""
	}
}

// IsJump returns true if the instruction unconditionally transfers control.
func (i Instruction) IsJump() bool {
	return i.Op == Jp || i.Op == JpV0
}

// IsCall returns true if the instruction is a subroutine call.
func (i Instruction) IsCall() bool {
	return i.Op == Call
}

// IsReturn returns true if the instruction is a subroutine return.
func (i Instruction) IsReturn() bool {
	return i.Op == Ret
}

// IsSkip returns true if the instruction conditionally skips the next one.
func (i Instruction) IsSkip() bool {
	switch i.Op {
	case Se, Sne, SeVxVy, SneVxVy, Skp, Sknp:
		return true
	default:
		return false
	}
}
