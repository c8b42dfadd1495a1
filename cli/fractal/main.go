package main

import (
	"os"

	fractalcmder "github.com/fractalhq/fractal/cmd/fractal"
)

func main() {
	cmd := fractalcmder.NewFractalCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
