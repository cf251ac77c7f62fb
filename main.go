package main

import (
	"os"

	"github.com/hireloop/talent-matcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
