// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/dexgodisasm/internal/disasm"
	"github.com/retroenv/dexgodisasm/internal/metadata"
	"github.com/retroenv/dexgodisasm/internal/options"
	"github.com/retroenv/dexgodisasm/internal/pool"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints the application banner and version info.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("dexgodisasm - Dalvik bytecode disassembler",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// ProcessFile disassembles one code block file and writes its listing.
// Raw code blocks carry no constant pool, symbolic references render as
// their raw index with a diagnostic.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", opts.Input, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}

	meta, err := metadata.Load()
	if err != nil {
		return fmt.Errorf("loading instruction metadata: %w", err)
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok && writer != os.Stdout {
			_ = closer.Close()
		}
	}()

	dec := disasm.New(logger, meta, &pool.Static{})
	block := dec.NewBlock(data, opts.BaseAddress)

	for _, line := range block.Disassemble() {
		if _, err := fmt.Fprintf(writer, "%08x: %s\n", line.Address, line.Text()); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".lst"
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating file %s: %w", opts.Output, err)
	}
	return file, nil
}
