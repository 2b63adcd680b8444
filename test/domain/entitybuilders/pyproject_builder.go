//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// dependencyLine is a single `name = value` entry, value being raw TOML.
type dependencyLine struct {
	name  string
	value string
}

// PyProjectBuilder helps create pyproject.toml documents with a fluent interface.
type PyProjectBuilder struct {
	*testkit.BaseBuilder
	name                string
	projectDependencies []string
	poetryDependencies  []dependencyLine
	uvSources           []dependencyLine
}

// NewPyProjectBuilder creates a new builder for a project without dependencies.
func NewPyProjectBuilder() *PyProjectBuilder {
	return &PyProjectBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "sample-project",
	}
}

// WithName sets the project name.
func (b *PyProjectBuilder) WithName(name string) *PyProjectBuilder {
	b.name = name
	return b
}

// WithProjectDependency appends a PEP 508 specifier to [project].dependencies.
func (b *PyProjectBuilder) WithProjectDependency(specifier string) *PyProjectBuilder {
	b.projectDependencies = append(b.projectDependencies, specifier)
	return b
}

// WithPoetryVersion adds a version constraint to [tool.poetry.dependencies].
func (b *PyProjectBuilder) WithPoetryVersion(name, version string) *PyProjectBuilder {
	b.poetryDependencies = append(b.poetryDependencies, dependencyLine{name, fmt.Sprintf("%q", version)})
	return b
}

// WithPoetryPath adds a local path dependency to [tool.poetry.dependencies].
func (b *PyProjectBuilder) WithPoetryPath(name, path string) *PyProjectBuilder {
	b.poetryDependencies = append(b.poetryDependencies, dependencyLine{
		name, fmt.Sprintf("{ path = %q, develop = true }", path),
	})
	return b
}

// WithUvSource adds a raw TOML source to [tool.uv.sources].
func (b *PyProjectBuilder) WithUvSource(name, rawValue string) *PyProjectBuilder {
	b.uvSources = append(b.uvSources, dependencyLine{name, rawValue})
	return b
}

// WithUvPath adds a local path source to [tool.uv.sources].
func (b *PyProjectBuilder) WithUvPath(name, path string) *PyProjectBuilder {
	return b.WithUvSource(name, fmt.Sprintf("{ path = %q, editable = true }", path))
}

// Build creates the document (satisfies testkit.Builder interface).
func (b *PyProjectBuilder) Build() interface{} {
	return b.BuildContent()
}

// BuildContent renders the TOML document.
func (b *PyProjectBuilder) BuildContent() string {
	var sb strings.Builder

	sb.WriteString("[project]\n")
	fmt.Fprintf(&sb, "name = %q\n", b.name)
	sb.WriteString("version = \"0.1.0\"\n")
	sb.WriteString("dependencies = [")
	for i, specifier := range b.projectDependencies {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", specifier)
	}
	sb.WriteString("]\n")

	if len(b.poetryDependencies) > 0 {
		sb.WriteString("\n[tool.poetry.dependencies]\n")
		for _, dep := range b.poetryDependencies {
			fmt.Fprintf(&sb, "%s = %s\n", dep.name, dep.value)
		}
	}

	if len(b.uvSources) > 0 {
		sb.WriteString("\n[tool.uv.sources]\n")
		for _, dep := range b.uvSources {
			fmt.Fprintf(&sb, "%s = %s\n", dep.name, dep.value)
		}
	}

	return sb.String()
}

// Reset clears the builder state, allowing it to be reused.
func (b *PyProjectBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "sample-project"
	b.projectDependencies = nil
	b.poetryDependencies = nil
	b.uvSources = nil
	return b
}

// Clone creates a deep copy of the PyProjectBuilder.
func (b *PyProjectBuilder) Clone() testkit.Builder {
	return &PyProjectBuilder{
		BaseBuilder:         b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:                b.name,
		projectDependencies: append([]string(nil), b.projectDependencies...),
		poetryDependencies:  append([]dependencyLine(nil), b.poetryDependencies...),
		uvSources:           append([]dependencyLine(nil), b.uvSources...),
	}
}
