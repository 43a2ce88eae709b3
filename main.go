package main

import (
	"os"

	"github.com/JohnPitter/church-management-sub013/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
