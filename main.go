package main

import (
	"github.com/slnclean/slnclean/app"
)

var Version = "development"

func main() {
	app.New(Version)
}
