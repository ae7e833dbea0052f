// Package machine implements the CHIP-8 virtual machine state and executor.
//
// # Memory Layout
//
// The machine has 4KB of memory (0x000-0xFFF):
//   - 0x050-0x09F: built-in hexadecimal font, 16 glyphs of 5 bytes
//   - ProgramStart-0xFFF: program and data area
//
// All memory accesses and every program counter assignment are masked to 12
// bits, so a malformed instruction stream can never index outside of memory.
//
// # Execution Model
//
// The machine is single-threaded and synchronous. The caller drives it by
// calling Step once per instruction and DecrementTimers at 60 Hz. Neither
// operation blocks. The wait-key instruction does not block either, it sets a
// latch that the caller observes through WaitingKey and clears by calling
// DeliverKey.
//
// Key state and audio output are provided by collaborators passed as options:
//
//	m := machine.New(
//		machine.WithKeyPad(keys),
//		machine.WithSpeaker(tone),
//	)
//	if err := m.Load(rom); err != nil {
//		return err
//	}
//	for {
//		if _, ok := m.WaitingKey(); ok {
//			m.DeliverKey(key)
//			continue
//		}
//		m.Step()
//	}
package machine
