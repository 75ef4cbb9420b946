package main

import (
	"github.com/robotalks/ledfield/pkg/cli/sh"
	"github.com/robotalks/ledfield/pkg/field"
)

//go-build: CGO_ENABLED=0

func init() {
	field.SetupFlags()
}

func main() {
	sh.Main()
}
