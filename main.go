package main

import (
	"os"

	"github.com/cmdgen/cmdgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
