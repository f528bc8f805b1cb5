package main

import (
	"os"

	"github.com/nauta-treinamentos/nauta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
