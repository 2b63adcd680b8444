package main

import (
	"os"

	"github.com/rios0rios0/guardrails/internal"
)

func main() {
	internal.ConfigureLogger()

	// Inject controllers via DIG
	appContext := internal.InjectAppInternal()
	cobraRoot := appContext.BuildRootCommand()

	os.Exit(internal.Execute(cobraRoot, os.Args[1:], os.Stderr))
}
