package entities

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// PyProjectFile is the manifest read by the poetry and uv checks.
	PyProjectFile = "pyproject.toml"
	// GoModFile is the manifest read by the Go module check.
	GoModFile = "go.mod"
	// TerraformExtension selects the files read by the Terraform module check.
	TerraformExtension = ".tf"

	fileScheme = "file://"
)

// PyProject holds the dependency sections of a pyproject.toml document as decoded.
// Each section is classified only by the check reading it. Absent sections are left empty.
type PyProject struct {
	ProjectDependencies any            // [project].dependencies
	PoetryDependencies  map[string]any // [tool.poetry.dependencies]
	PoetryGroups        map[string]any // [tool.poetry.group], keyed by group name
	UvSources           map[string]any // [tool.uv.sources]
}

// PoetryPathDependencies lists the poetry-managed declarations that point at a local path:
// tables with a "path" attribute under [tool.poetry.dependencies] and every dependency
// group, plus [project].dependencies specifiers using a file:// URL. A section holding
// values of the wrong shape yields *ParseError.
func (p *PyProject) PoetryPathDependencies() ([]PathDependency, error) {
	deps, err := tablePathDependencies(p.PoetryDependencies, "tool.poetry.dependencies")
	if err != nil {
		return nil, err
	}

	for _, group := range sortedKeys(p.PoetryGroups) {
		section := "tool.poetry.group." + group + ".dependencies"
		table, ok := p.PoetryGroups[group].(map[string]any)
		if !ok {
			return nil, sectionError("tool.poetry.group."+group, fmt.Errorf(
				"expected a table, got %T", p.PoetryGroups[group]))
		}
		groupDeps, ok := table["dependencies"]
		if !ok {
			continue
		}
		groupTable, ok := groupDeps.(map[string]any)
		if !ok {
			return nil, sectionError(section, fmt.Errorf("expected a table, got %T", groupDeps))
		}
		found, groupErr := tablePathDependencies(groupTable, section)
		if groupErr != nil {
			return nil, groupErr
		}
		deps = append(deps, found...)
	}

	specifiers, err := projectSpecifiers(p.ProjectDependencies)
	if err != nil {
		return nil, err
	}
	for _, specifier := range specifiers {
		if strings.Contains(specifier, fileScheme) {
			deps = append(deps, PathDependency{Name: specifier, Section: "project", File: PyProjectFile})
		}
	}
	return deps, nil
}

// UvPathDependencies lists the [tool.uv.sources] entries that point at a local path.
func (p *PyProject) UvPathDependencies() ([]PathDependency, error) {
	return tablePathDependencies(p.UvSources, "tool.uv.sources")
}

func tablePathDependencies(raw map[string]any, section string) ([]PathDependency, error) {
	specs, err := NewDependencySpecs(raw)
	if err != nil {
		return nil, sectionError(section, err)
	}

	var deps []PathDependency
	for _, name := range sortedKeys(specs) {
		spec := specs[name]
		if _, ok := spec.LocalPath(); ok {
			deps = append(deps, PathDependency{
				Name:    name,
				Detail:  spec.String(),
				Section: section,
				File:    PyProjectFile,
			})
		}
	}
	return deps, nil
}

func projectSpecifiers(raw any) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, sectionError("project", fmt.Errorf("dependencies: expected an array, got %T", raw))
	}
	specifiers := make([]string, 0, len(items))
	for i, item := range items {
		specifier, isString := item.(string)
		if !isString {
			return nil, sectionError("project", fmt.Errorf(
				"dependencies item %d: expected a string, got %T", i, item))
		}
		specifiers = append(specifiers, specifier)
	}
	return specifiers, nil
}

func sectionError(section string, err error) error {
	return &ParseError{File: PyProjectFile, Err: fmt.Errorf("[%s]: %w", section, err)}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ModuleReplacement is a replace directive of a go.mod file.
type ModuleReplacement struct {
	OldPath    string
	OldVersion string
	NewPath    string
	NewVersion string
	Local      bool // the replacement is a filesystem directory
	Line       int
}

// String renders the directive as written in go.mod.
func (r ModuleReplacement) String() string {
	old := r.OldPath
	if r.OldVersion != "" {
		old += " " + r.OldVersion
	}
	replacement := r.NewPath
	if r.NewVersion != "" {
		replacement += " " + r.NewVersion
	}
	return old + " => " + replacement
}

// GoModule holds the parts of a go.mod file relevant to path dependency checks.
type GoModule struct {
	Path         string
	Replacements []ModuleReplacement
}

// LocalReplacements lists the replace directives pointing at a local directory.
func (m *GoModule) LocalReplacements() []PathDependency {
	var deps []PathDependency
	for _, replacement := range m.Replacements {
		if replacement.Local {
			deps = append(deps, PathDependency{
				Name:    replacement.String(),
				Section: "replace",
				File:    GoModFile,
			})
		}
	}
	return deps
}

// TerraformModule is a module block found in a Terraform file.
type TerraformModule struct {
	Name   string
	Source string
	File   string
	Line   int
}

// IsLocal reports whether the source is a filesystem path rather than a registry or
// remote address. A bare "." or ".." counts as a path.
func (m TerraformModule) IsLocal() bool {
	return m.Source == "." || m.Source == ".." ||
		strings.HasPrefix(m.Source, "./") ||
		strings.HasPrefix(m.Source, "../") ||
		filepath.IsAbs(m.Source)
}

// EscapesDir reports whether the source is an absolute path or a relative path leading
// outside the directory holding the Terraform file.
func (m TerraformModule) EscapesDir() bool {
	if !m.IsLocal() {
		return false
	}
	if filepath.IsAbs(m.Source) {
		return true
	}
	cleaned := filepath.ToSlash(filepath.Clean(m.Source))
	return cleaned == ".." || strings.HasPrefix(cleaned, "../")
}

// EscapingTerraformModules lists the modules whose source escapes the working directory.
func EscapingTerraformModules(modules []TerraformModule) []PathDependency {
	var deps []PathDependency
	for _, module := range modules {
		if module.EscapesDir() {
			deps = append(deps, PathDependency{
				Name:    module.Name,
				Detail:  "source = \"" + module.Source + "\"",
				Section: "module",
				File:    module.File,
			})
		}
	}
	return deps
}
