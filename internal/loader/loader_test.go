package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		data := []byte{0x00, 0xE0, 0x12, 0x00}
		tmpFile := createTempFile(t, data)

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, data, program)
	})

	t.Run("load maximum size ROM", func(t *testing.T) {
		data := bytes.Repeat([]byte{0x12}, machine.MaxProgramSize)
		tmpFile := createTempFile(t, data)

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, program, machine.MaxProgramSize)
	})

	t.Run("error on oversized ROM", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, machine.MaxProgramSize+1))

		_, err := New().Load(tmpFile)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, machine.ErrProgramTooLarge))
	})

	t.Run("error on empty ROM", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyROM))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestLoadFromReader(t *testing.T) {
	t.Run("stops reading after the limit", func(t *testing.T) {
		reader := bytes.NewReader(make([]byte, 3*machine.MaxProgramSize))

		_, err := New().LoadFromReader(reader)
		assert.True(t, errors.Is(err, machine.ErrProgramTooLarge))
		assert.Equal(t, 2*machine.MaxProgramSize-1, reader.Len())
	})

	t.Run("read error", func(t *testing.T) {
		_, err := New().LoadFromReader(iotest.ErrReader(errors.New("broken")))
		assert.ErrorContains(t, err, "broken")
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
