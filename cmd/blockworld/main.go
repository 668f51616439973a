package main

import (
	"fmt"
	"io"
	"os"

	"blockworld.dev/internal/action"
	"blockworld.dev/internal/worldmap"
)

// Exit codes are a contract with calling scripts; keep them stable.
const (
	exitUsage      = 1
	exitLoad       = 2
	exitActionOpen = 3
	exitActions    = 4
	exitSave       = 5
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: blockworld <input map> <actions file | -> <output map>")
		os.Exit(exitUsage)
	}
	mapPath, actionsPath, outPath := os.Args[1], os.Args[2], os.Args[3]

	m, err := worldmap.Load(mapPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitLoad)
	}

	var src io.Reader = os.Stdin
	if actionsPath != "-" {
		f, err := os.Open(actionsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitActionOpen)
		}
		defer f.Close()
		src = f
	}

	if err := action.ProcessAll(src, m, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitActions)
	}

	if err := m.Save(outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSave)
	}
}
