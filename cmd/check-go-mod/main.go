package main

import (
	"os"

	"github.com/rios0rios0/guardrails/internal"
)

func main() {
	os.Exit(internal.RunStandalone("check-go-mod", os.Args[1:]))
}
