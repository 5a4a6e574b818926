package main

import (
	"os"

	wezzacmder "github.com/zoryamba/wezza/cmd/wezza"
)

func main() {
	cmd := wezzacmder.NewWezzaCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
