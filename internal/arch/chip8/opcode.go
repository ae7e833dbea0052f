package chip8

// Op identifies the shape of a decoded instruction.
type Op uint8

// Instruction shapes of the classic CHIP-8 instruction table.
const (
	Unknown Op = iota
	Cls        // 00E0
	Ret        // 00EE
	Jp         // 1nnn
	Call       // 2nnn
	Se         // 3xkk
	Sne        // 4xkk
	SeVxVy     // 5xy0
	LdVx       // 6xkk
	Add        // 7xkk
	LdVxVy     // 8xy0
	Or         // 8xy1
	And        // 8xy2
	Xor        // 8xy3
	AddVxVy    // 8xy4
	Sub        // 8xy5
	Shr        // 8xy6
	Subn       // 8xy7
	Shl        // 8xyE
	SneVxVy    // 9xy0
	LdI        // Annn
	JpV0       // Bnnn
	Rnd        // Cxkk
	Drw        // Dxyn
	Skp        // Ex9E
	Sknp       // ExA1
	LdVxDT     // Fx07
	LdVxK      // Fx0A
	LdDTVx     // Fx15
	LdSTVx     // Fx18
	AddIVx     // Fx1E
	LdFVx      // Fx29
	LdBVx      // Fx33
	LdIVx      // Fx55
	LdVxI      // Fx65

	opCount = iota
)

var opNames = [opCount]string{
	Unknown: "UNKNOWN",
	Cls:     "CLS",
	Ret:     "RET",
	Jp:      "JP",
	Call:    "CALL",
	Se:      "SE",
	Sne:     "SNE",
	SeVxVy:  "SE_VxVy",
	LdVx:    "LD_Vx",
	Add:     "ADD",
	LdVxVy:  "LD_VxVy",
	Or:      "OR",
	And:     "AND",
	Xor:     "XOR",
	AddVxVy: "ADD_VxVy",
	Sub:     "SUB",
	Shr:     "SHR",
	Subn:    "SUBN",
	Shl:     "SHL",
	SneVxVy: "SNE_VxVy",
	LdI:     "LD_I",
	JpV0:    "JP_V0",
	Rnd:     "RND",
	Drw:     "DRW",
	Skp:     "SKP",
	Sknp:    "SKNP",
	LdVxDT:  "LD_Vx_DT",
	LdVxK:   "LD_Vx_K",
	LdDTVx:  "LD_DT_Vx",
	LdSTVx:  "LD_ST_Vx",
	AddIVx:  "ADD_I_Vx",
	LdFVx:   "LD_F_Vx",
	LdBVx:   "LD_B_Vx",
	LdIVx:   "LD_[I]_Vx",
	LdVxI:   "LD_Vx_[I]",
}

// String returns the identifier of the instruction shape.
func (o Op) String() string {
	if int(o) >= len(opNames) {
		return opNames[Unknown]
	}
	return opNames[o]
}

// Ops returns all known instruction shapes, excluding Unknown.
func Ops() []Op {
	ops := make([]Op, 0, opCount-1)
	for op := Cls; op < opCount; op++ {
		ops = append(ops, op)
	}
	return ops
}
