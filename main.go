package main

import (
	"os"

	"github.com/conferential/conferential/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
