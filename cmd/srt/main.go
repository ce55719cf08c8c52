package main

import (
	"os"

	"github.com/richwiss/srt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
