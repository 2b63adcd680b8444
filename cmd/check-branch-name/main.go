package main

import (
	"os"

	"github.com/rios0rios0/guardrails/internal"
)

func main() {
	os.Exit(internal.RunStandalone("check-branch-name", os.Args[1:]))
}
