package main

import (
	"os"

	"github.com/optionsinject/optionsinject/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
