package main

import (
	"fmt"
	"os"

	"github.com/aretw0/factory/internal/presentation/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		p, _ := tui.NewPalette(os.Stderr, tui.ColorAuto)
		fmt.Fprintln(os.Stderr, p.Error("Error: "+err.Error()))
		os.Exit(1)
	}
}
