package main

import (
	"ethsend/cmd"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := cmd.Start(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "transfer failed: %s\n", err)
		os.Exit(1)
	}
}
