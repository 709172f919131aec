package main

import (
	"os"

	"footprint/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run())
}
