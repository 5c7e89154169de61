package main

import (
	"os"

	"github.com/deskhub/deskhub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
