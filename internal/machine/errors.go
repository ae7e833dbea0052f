package machine

import "errors"

// ErrProgramTooLarge is returned when a program does not fit into the memory
// between ProgramStart and the end of memory.
var ErrProgramTooLarge = errors.New("program too large")
