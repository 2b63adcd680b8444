package main

import (
	"os"

	"github.com/rios0rios0/guardrails/internal"
)

func main() {
	os.Exit(internal.RunStandalone("check-poetry-toml", os.Args[1:]))
}
