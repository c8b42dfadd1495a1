package main

import (
	"os"

	servecmder "github.com/fractalhq/fractal/cmd/fractal/serve"
)

func main() {
	cmd := servecmder.NewServeCmd()
	cmd.Use = "fractalapi"
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .fractal directory location")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
