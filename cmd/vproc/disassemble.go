package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/m2sim/core/source"
	"github.com/sarchlab/m2sim/isa"
)

func runDisassemble(inPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("vproc: reading %s: %w", inPath, err)
	}

	cursor := source.NewByteCursor(data)
	for cursor.Len() > 0 {
		inst, err := isa.Decode(cursor)
		if err != nil {
			return fmt.Errorf("vproc: decode at offset %d: %w", cursor.Pos(), err)
		}
		fmt.Println(formatLine(inst))
	}
	return nil
}
