package chip8

import (
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // table of the complete instruction set
func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		want Instruction
	}{
		{"CLS", 0x00E0, Instruction{Op: Cls}},
		{"RET", 0x00EE, Instruction{Op: Ret}},
		{"JP", 0x1ABC, Instruction{Op: Jp, NNN: 0xABC}},
		{"CALL", 0x2345, Instruction{Op: Call, NNN: 0x345}},
		{"SE", 0x3A12, Instruction{Op: Se, X: 0xA, KK: 0x12}},
		{"SNE", 0x4B34, Instruction{Op: Sne, X: 0xB, KK: 0x34}},
		{"SE_VxVy", 0x5120, Instruction{Op: SeVxVy, X: 0x1, Y: 0x2}},
		{"LD_Vx", 0x6C56, Instruction{Op: LdVx, X: 0xC, KK: 0x56}},
		{"ADD", 0x7D78, Instruction{Op: Add, X: 0xD, KK: 0x78}},
		{"LD_VxVy", 0x8AB0, Instruction{Op: LdVxVy, X: 0xA, Y: 0xB}},
		{"OR", 0x8AB1, Instruction{Op: Or, X: 0xA, Y: 0xB}},
		{"AND", 0x8AB2, Instruction{Op: And, X: 0xA, Y: 0xB}},
		{"XOR", 0x8AB3, Instruction{Op: Xor, X: 0xA, Y: 0xB}},
		{"ADD_VxVy", 0x8AB4, Instruction{Op: AddVxVy, X: 0xA, Y: 0xB}},
		{"SUB", 0x8AB5, Instruction{Op: Sub, X: 0xA, Y: 0xB}},
		{"SHR", 0x8AB6, Instruction{Op: Shr, X: 0xA}},
		{"SUBN", 0x8AB7, Instruction{Op: Subn, X: 0xA, Y: 0xB}},
		{"SHL", 0x8ABE, Instruction{Op: Shl, X: 0xA}},
		{"SNE_VxVy", 0x9340, Instruction{Op: SneVxVy, X: 0x3, Y: 0x4}},
		{"LD_I", 0xA123, Instruction{Op: LdI, NNN: 0x123}},
		{"JP_V0", 0xB456, Instruction{Op: JpV0, NNN: 0x456}},
		{"RND", 0xC7F0, Instruction{Op: Rnd, X: 0x7, KK: 0xF0}},
		{"DRW", 0xD125, Instruction{Op: Drw, X: 0x1, Y: 0x2, N: 0x5}},
		{"SKP", 0xE59E, Instruction{Op: Skp, X: 0x5}},
		{"SKNP", 0xE6A1, Instruction{Op: Sknp, X: 0x6}},
		{"LD_Vx_DT", 0xF107, Instruction{Op: LdVxDT, X: 0x1}},
		{"LD_Vx_K", 0xF20A, Instruction{Op: LdVxK, X: 0x2}},
		{"LD_DT_Vx", 0xF315, Instruction{Op: LdDTVx, X: 0x3}},
		{"LD_ST_Vx", 0xF418, Instruction{Op: LdSTVx, X: 0x4}},
		{"ADD_I_Vx", 0xF51E, Instruction{Op: AddIVx, X: 0x5}},
		{"LD_F_Vx", 0xF629, Instruction{Op: LdFVx, X: 0x6}},
		{"LD_B_Vx", 0xFA33, Instruction{Op: LdBVx, X: 0xA}},
		{"LD_[I]_Vx", 0xF855, Instruction{Op: LdIVx, X: 0x8}},
		{"LD_Vx_[I]", 0xF965, Instruction{Op: LdVxI, X: 0x9}},
	}

	seen := make(map[Op]bool)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want
			want.Word = tt.word
			assert.Equal(t, want, Decode(tt.word))
			assert.Equal(t, tt.name, want.Op.String())
		})
		seen[tt.want.Op] = true
	}

	for _, op := range Ops() {
		assert.True(t, seen[op], "instruction shape %s has no decode test", op)
	}
}

func TestDecodeUnknown(t *testing.T) {
	words := []uint16{
		0x0000, // machine code call to 0x000
		0x0123, // machine code call
		0x01E0, // CLS pattern with non zero x
		0x00E1,
		0x00EF,
		0x5121, // 5xy0 requires n == 0
		0x512F,
		0x8AB8,
		0x8AB9,
		0x8ABF,
		0x9341, // 9xy0 requires n == 0
		0xE19F,
		0xE1A2,
		0xE100,
		0xF100,
		0xF108,
		0xF1FF,
		0xF164,
	}

	for _, word := range words {
		ins := Decode(word)
		assert.Equal(t, Unknown, ins.Op, "word %04X", word)
		assert.Equal(t, word, ins.Word)
		assert.Equal(t, "", ins.Name())
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	for word := range 0x10000 {
		w := uint16(word)
		assert.Equal(t, Decode(w), Decode(w))
	}
}

func TestDecodeFieldsWithinRange(t *testing.T) {
	for word := range 0x10000 {
		ins := Decode(uint16(word))
		assert.True(t, ins.X <= 0xF)
		assert.True(t, ins.Y <= 0xF)
		assert.True(t, ins.N <= 0xF)
		assert.True(t, ins.NNN <= 0xFFF)
	}
}

func TestDecodeAt(t *testing.T) {
	data := []byte{0x00, 0xE0, 0x12, 0x00, 0xFF}

	ins, ok := DecodeAt(data, 0)
	assert.True(t, ok)
	assert.Equal(t, Cls, ins.Op)

	ins, ok = DecodeAt(data, 2)
	assert.True(t, ok)
	assert.Equal(t, Jp, ins.Op)
	assert.Equal(t, uint16(0x200), ins.NNN)

	_, ok = DecodeAt(data, 4)
	assert.False(t, ok)

	_, ok = DecodeAt(data, -1)
	assert.False(t, ok)
}

func TestDecodeMatchesOpcodeTable(t *testing.T) {
	entries := 0
	for _, opcodes := range chip8cpu.Opcodes {
		for _, opcode := range opcodes {
			op, ok := shapes[opcode.Info]
			assert.True(t, ok, "opcode $%04X has no instruction shape", opcode.Info.Value)
			assert.NotEqual(t, Unknown, op)
			entries++
		}
	}
	assert.Equal(t, len(Ops()), entries)
	assert.Len(t, shapes, entries)

	for w := range 0x10000 {
		word := uint16(w)
		ins := Decode(word)
		opcode, ok := lookup(word)
		assert.Equal(t, ok, ins.Op != Unknown, "word $%04X", word)
		if ok {
			assert.Equal(t, opcode.Instruction.Name, ins.Name(), "word $%04X", word)
		}
	}
}
