package entities

import "strings"

// ProcessResult is the captured outcome of an external process that ran to completion.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the process exited with status 0.
func (r ProcessResult) Succeeded() bool { return r.ExitCode == 0 }

// CombinedOutput joins stdout and stderr, trimmed, skipping empty streams.
func (r ProcessResult) CombinedOutput() string {
	parts := make([]string, 0, 2) //nolint:mnd // stdout + stderr
	for _, stream := range []string{r.Stdout, r.Stderr} {
		if trimmed := strings.TrimSpace(stream); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n")
}

// SpellChecker describes the external spell checking tool. The message file path is
// appended after Args.
type SpellChecker struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// SpellingReport is the verdict of a spell checker run.
type SpellingReport struct {
	Clean  bool
	Output string
}
