package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/m2sim/core"
	"github.com/sarchlab/m2sim/core/source"
	"github.com/sarchlab/m2sim/isa"
)

func runProgram(inPath string, memorySize, portCount int) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("vproc: reading %s: %w", inPath, err)
	}

	c := core.NewCore(memorySize, portCount)
	if err := c.Memory.LoadAt(0, data); err != nil {
		return fmt.Errorf("vproc: loading %s: %w", inPath, err)
	}

	cursor := source.NewByteCursor(data)
	count := 0
	for cursor.Len() > 0 {
		offset := cursor.Pos()
		inst, err := isa.Decode(cursor)
		if err != nil {
			return fmt.Errorf("vproc: decode at offset %d: %w", offset, err)
		}

		c.Regs.PC = uint64(offset)
		if err := c.Execute(inst); err != nil {
			return fmt.Errorf("vproc: execute %s at offset %d: %w", formatLine(inst), offset, err)
		}
		count++

		if verbose {
			fmt.Printf("%04d  %-40s  regs=%v flags=%+v\n", offset, formatLine(inst), c.Regs.X, c.Regs.Flags)
		}
	}

	fmt.Printf("ran %d instructions\n", count)
	return nil
}
