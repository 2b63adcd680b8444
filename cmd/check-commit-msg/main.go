package main

import (
	"os"

	"github.com/rios0rios0/guardrails/internal"
)

func main() {
	os.Exit(internal.RunStandalone("check-commit-msg", os.Args[1:]))
}
