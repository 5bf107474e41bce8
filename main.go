package main

import (
	"os"

	"github.com/remindapp/remindapp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
