package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/dexgodisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "block.bin")
	output := filepath.Join(dir, "block.lst")

	code := []byte{
		0x01, 0x32, // move v2, v3
		0x28, 0xff, // goto -1
	}
	assert.NoError(t, os.WriteFile(input, code, 0o644))

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: output},
		Flags:      options.Flags{BaseAddress: 0x1000},
	}
	assert.NoError(t, ProcessFile(context.Background(), log.NewTestLogger(t), opts))

	listing, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "00001000: move v2, v3\n00001002: goto -1\n", string(listing))
}

func TestProcessFileMissingInput(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Input: filepath.Join(t.TempDir(), "missing.bin")},
	}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "reading file")
}

func TestProcessFileCancelledContext(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "block.bin")
	assert.NoError(t, os.WriteFile(input, []byte{0x00, 0x00}, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := options.Program{Parameters: options.Parameters{Input: input}}
	err := ProcessFile(ctx, log.NewTestLogger(t), opts)
	assert.Error(t, err)
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	opts := &options.Program{}
	opts.Batch = filepath.Join(dir, "*.bin")
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	opts = &options.Program{}
	opts.Input = "single.bin"
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"single.bin"}, files)
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "block.lst", GenerateOutputFilename("block.bin"))
	assert.Equal(t, "dir/code.lst", GenerateOutputFilename("dir/code.dex"))
	assert.Equal(t, "noext.lst", GenerateOutputFilename("noext"))
}
