package main

import (
	"os"

	"github.com/starfield-blog/starfield/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
