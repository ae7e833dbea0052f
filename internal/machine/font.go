package machine

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// font contains the 16 hexadecimal digit glyphs 0-F, 5 rows of 4 pixels each.
// The glyphs are taken from the shared CHIP-8 CPU, which places them at
// address 0 of a freshly created memory; this machine maps them to FontStart.
var font = loadFont()

func loadFont() [FontGlyphCount * FontGlyphSize]uint8 {
	var glyphs [FontGlyphCount * FontGlyphSize]uint8
	copy(glyphs[:], chip8cpu.New().Memory[:len(glyphs)])
	return glyphs
}

// Font returns a copy of the built-in font table.
func Font() []byte {
	b := make([]byte, len(font))
	copy(b, font[:])
	return b
}

// glyphAddress returns the memory address of the glyph for the hex digit.
func glyphAddress(digit uint8) uint16 {
	return FontStart + uint16(digit&0xF)*FontGlyphSize
}
