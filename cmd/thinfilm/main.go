package main

import (
	"fmt"
	"os"

	"github.com/lkaminski/thinfilm/internal/thinfilm"
)

func main() {
	thinfilm.Debug = os.Getenv("DEBUG") != ""

	cfg := thinfilm.DefaultConfigPath
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := thinfilm.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
