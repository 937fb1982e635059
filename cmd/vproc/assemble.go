package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/m2sim/isa"
)

func runAssemble(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("vproc: opening %s: %w", inPath, err)
	}
	defer in.Close()

	var encoded []byte
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		inst, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("vproc: %s:%d: %w", inPath, lineNumber, err)
		}
		encoded = append(encoded, isa.Encode(inst)...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("vproc: reading %s: %w", inPath, err)
	}

	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return fmt.Errorf("vproc: writing %s: %w", outPath, err)
	}

	if verbose {
		fmt.Printf("assembled %s (%d bytes) into %s\n", inPath, len(encoded), outPath)
	}
	return nil
}
