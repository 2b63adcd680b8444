package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultBranchPattern accepts the long-lived branches, the detached "HEAD" name, and
// "<type>/<description>" branches.
const DefaultBranchPattern = `^(main|lts|develop|main-fixes|lts-fixes|develop-to-main-fixes|HEAD)$` +
	`|^(feat|fix|build|refactor|release|chore|docs|test)/[a-zA-Z0-9._-]+$`

// DetachedHead is the name reported by git when HEAD does not point at a branch.
const DetachedHead = "HEAD"

// ExampleBranchNames are printed with every branch name mismatch.
var ExampleBranchNames = []string{ //nolint:gochecknoglobals // read-only diagnostic data
	"feat/add-user-auth",
	"fix/fix-login-issue",
	"build/critical-security-patch",
	"release/v1.2.0",
	"chore/update-dependencies",
	"docs/update-readme",
	"refactor/cleanup-utils",
}

// BranchPattern is a compiled branch naming rule. Matching always covers the whole name.
type BranchPattern struct {
	expr string
	re   *regexp.Regexp
}

// NewBranchPattern compiles expr, wrapping it so it is anchored at both ends.
func NewBranchPattern(expr string) (*BranchPattern, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, NewMalformedError(
			fmt.Sprintf("Invalid branch name pattern '%s': %v", expr, err), err,
		)
	}
	return &BranchPattern{expr: expr, re: re}, nil
}

// String returns the pattern as the caller supplied it.
func (p *BranchPattern) String() string { return p.expr }

// Matches reports whether name fully matches the pattern.
func (p *BranchPattern) Matches(name string) bool {
	return p.re.MatchString(name)
}

// ValidateBranchName returns a KindRejection error when name does not match pattern.
func ValidateBranchName(name string, pattern *BranchPattern) error {
	if pattern.Matches(name) {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Invalid branch name: '%s'\n", name)
	fmt.Fprintf(&sb, "Branch name must match pattern: %s\n", pattern)
	sb.WriteString("Examples of valid branch names:")
	for _, example := range ExampleBranchNames {
		sb.WriteString("\n  - ")
		sb.WriteString(example)
	}
	return NewRejectionError(sb.String())
}
