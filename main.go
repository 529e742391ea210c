package main

import (
	"os"

	"github.com/CrestNiraj12/jokeboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
