package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultIssueTypes are the commit types that must reference an issue.
var DefaultIssueTypes = []string{"feat", "fix", "refactor"} //nolint:gochecknoglobals // default settings

var issueReferencePattern = regexp.MustCompile(`#\d+`)

// CommitMessage is the content of a commit message file.
type CommitMessage struct {
	Path    string
	Content string
}

// NewCommitMessage wraps the message read from path.
func NewCommitMessage(path, content string) CommitMessage {
	return CommitMessage{Path: path, Content: content}
}

// Subject returns the first line of the message.
func (m CommitMessage) Subject() string {
	subject, _, _ := strings.Cut(m.Content, "\n")
	return strings.TrimRight(subject, "\r")
}

// RequiresIssueReference reports whether the message starts with one of issueTypes.
// The comparison is a case-sensitive prefix match at the start of the message.
func (m CommitMessage) RequiresIssueReference(issueTypes []string) bool {
	for _, issueType := range issueTypes {
		if issueType != "" && strings.HasPrefix(m.Content, issueType) {
			return true
		}
	}
	return false
}

// HasIssueReference reports whether the message contains a "#<digits>" token.
func (m CommitMessage) HasIssueReference() bool {
	return issueReferencePattern.MatchString(m.Content)
}

// ValidateIssueReference returns a KindRejection error when the message type requires an
// issue reference and none is present.
func ValidateIssueReference(message CommitMessage, issueTypes []string) error {
	if !message.RequiresIssueReference(issueTypes) || message.HasIssueReference() {
		return nil
	}
	return NewRejectionError(fmt.Sprintf(
		"Missing issue number in commit message: '%s'\n"+
			"%s commits must reference an issue, e.g. \"feat(api): add endpoint #101\"",
		message.Subject(), strings.Join(issueTypes, ", "),
	))
}
