package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// ResolverGit resolves the current branch with the git CLI.
	ResolverGit = "git"
	// ResolverGoGit resolves the current branch by reading the repository with go-git.
	ResolverGoGit = "go-git"

	defaultSpellCommand = "typos"
)

// ErrSettingsNotFound is returned by FindSettingsFile when no settings file exists.
var ErrSettingsNotFound = errors.New("settings file not found in default locations")

// Settings is the optional per-repository configuration of the checks.
type Settings struct {
	Branch        BranchSettings        `yaml:"branch"`
	CommitMessage CommitMessageSettings `yaml:"commit_message"`
	Manifests     ManifestSettings      `yaml:"manifests"`
}

// BranchSettings configures the branch name check.
type BranchSettings struct {
	Pattern  string `yaml:"pattern"`
	Resolver string `yaml:"resolver"` // ResolverGit or ResolverGoGit
}

// CommitMessageSettings configures the commit message check.
type CommitMessageSettings struct {
	IssueTypes   []string     `yaml:"issue_types"`
	SpellChecker SpellChecker `yaml:"spell_checker"`
}

// ManifestSettings configures the manifest checks.
type ManifestSettings struct {
	Dir string `yaml:"dir"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses the settings file at path, expanding environment
// variables and filling unset values with defaults. Values are validated by the check
// using them, so a bad branch pattern does not affect the manifest checks.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	settings.Branch.Pattern = ExpandEnv(settings.Branch.Pattern)
	settings.CommitMessage.SpellChecker.Command = ExpandEnv(settings.CommitMessage.SpellChecker.Command)
	for i, arg := range settings.CommitMessage.SpellChecker.Args {
		settings.CommitMessage.SpellChecker.Args[i] = ExpandEnv(arg)
	}
	settings.Manifests.Dir = ExpandEnv(settings.Manifests.Dir)

	settings.applyDefaults()
	return &settings, nil
}

// LoadSettings loads the file at path, or auto-detects one when path is empty.
// Without any settings file the defaults are returned.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindSettingsFile()
		if errors.Is(err, ErrSettingsNotFound) {
			logger.Debug("No settings file found, using defaults")
			return DefaultSettings(), nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}

	logger.Debugf("Using settings file: %s", path)
	return NewSettings(path)
}

// FindSettingsFile searches for a settings file in standard locations.
// Returns the path to the first file found or ErrSettingsNotFound.
func FindSettingsFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".guardrails.yaml",
		".guardrails.yml",
		"guardrails.yaml",
		"guardrails.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrSettingsNotFound
}

// ExpandEnv replaces ${VAR} references with the value of the environment variable.
// Unset variables expand to an empty string.
func ExpandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func (s *Settings) applyDefaults() {
	if s.Branch.Pattern == "" {
		s.Branch.Pattern = DefaultBranchPattern
	}
	if s.Branch.Resolver == "" {
		s.Branch.Resolver = ResolverGit
	}
	if len(s.CommitMessage.IssueTypes) == 0 {
		s.CommitMessage.IssueTypes = append([]string(nil), DefaultIssueTypes...)
	}
	if s.CommitMessage.SpellChecker.Command == "" {
		s.CommitMessage.SpellChecker.Command = defaultSpellCommand
	}
	if s.Manifests.Dir == "" {
		s.Manifests.Dir = "."
	}
}
