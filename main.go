package main

import (
	"os"

	"github.com/jayshree-infra/website/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
