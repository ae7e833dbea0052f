package chip8

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is the number of words decoded between context checks.
const cancelCheckInterval = 256

// Stats summarizes the decoded words of a program image. Code and data are
// interleaved in CHIP-8 programs, so the numbers describe words, not
// reachable instructions.
type Stats struct {
	Words   int        // number of aligned 16-bit words
	Unknown int        // words that did not decode
	Ops     map[Op]int // count per known instruction shape
}

// Analyze decodes every aligned word of program using the given number of
// workers and returns the resulting histogram. A trailing odd byte is
// ignored. A workers value of less than 1 uses one worker per CPU.
func Analyze(ctx context.Context, program []byte, workers int) (Stats, error) {
	words := len(program) / 2
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	workers = max(1, min(workers, words))
	chunk := (words + workers - 1) / max(1, workers)

	histograms := make([][opCount]int, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := range workers {
		start := w * chunk
		end := min(start+chunk, words)
		if start >= end {
			break
		}

		g.Go(func() error {
			hist := &histograms[w]
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				word := uint16(program[2*i])<<8 | uint16(program[2*i+1])
				hist[Decode(word).Op]++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("decoding program: %w", err)
	}

	stats := Stats{
		Words: words,
		Ops:   make(map[Op]int),
	}
	for _, hist := range histograms {
		stats.Unknown += hist[Unknown]
		for op := Cls; op < opCount; op++ {
			if hist[op] > 0 {
				stats.Ops[op] += hist[op]
			}
		}
	}
	return stats, nil
}

// Known returns the number of words that decoded to a known instruction.
func (s Stats) Known() int {
	return s.Words - s.Unknown
}
