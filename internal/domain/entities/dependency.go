package entities

import (
	"fmt"
	"sort"
	"strings"
)

// DependencyKind tags the shape of a dependency declaration.
type DependencyKind int

const (
	// ScalarDependency is a plain version constraint, e.g. `requests = "^2.31"`.
	ScalarDependency DependencyKind = iota
	// TableDependency is an inline table of attributes, e.g. `lib = { path = "../lib" }`.
	TableDependency
	// ListDependency holds several alternative declarations (poetry multiple constraints,
	// uv sources with markers).
	ListDependency
)

// DependencySpec is a dependency declaration as found in a manifest. Exactly one of
// Scalar, Table or Alternatives is meaningful, selected by Kind.
type DependencySpec struct {
	Kind         DependencyKind
	Scalar       string
	Table        map[string]any
	Alternatives []DependencySpec
}

// NewDependencySpec classifies a freshly decoded manifest value.
func NewDependencySpec(raw any) (DependencySpec, error) {
	switch value := raw.(type) {
	case string:
		return DependencySpec{Kind: ScalarDependency, Scalar: value}, nil
	case int64, float64, bool:
		return DependencySpec{Kind: ScalarDependency, Scalar: fmt.Sprint(value)}, nil
	case map[string]any:
		return DependencySpec{Kind: TableDependency, Table: value}, nil
	case []map[string]any:
		alternatives := make([]DependencySpec, 0, len(value))
		for _, table := range value {
			alternatives = append(alternatives, DependencySpec{Kind: TableDependency, Table: table})
		}
		return DependencySpec{Kind: ListDependency, Alternatives: alternatives}, nil
	case []any:
		alternatives := make([]DependencySpec, 0, len(value))
		for i, item := range value {
			spec, err := NewDependencySpec(item)
			if err != nil {
				return DependencySpec{}, fmt.Errorf("item %d: %w", i, err)
			}
			alternatives = append(alternatives, spec)
		}
		return DependencySpec{Kind: ListDependency, Alternatives: alternatives}, nil
	default:
		return DependencySpec{}, fmt.Errorf("unsupported dependency declaration of type %T", raw)
	}
}

// NewDependencySpecs classifies every entry of a decoded dependency table.
func NewDependencySpecs(raw map[string]any) (map[string]DependencySpec, error) {
	specs := make(map[string]DependencySpec, len(raw))
	for name, value := range raw {
		spec, err := NewDependencySpec(value)
		if err != nil {
			return nil, fmt.Errorf("dependency %q: %w", name, err)
		}
		specs[name] = spec
	}
	return specs, nil
}

// LocalPath returns the "path" attribute of the declaration, if any.
func (s DependencySpec) LocalPath() (string, bool) {
	switch s.Kind {
	case ScalarDependency:
		return "", false
	case TableDependency:
		path, ok := s.Table["path"]
		if !ok {
			return "", false
		}
		return fmt.Sprint(path), true
	case ListDependency:
		for _, alternative := range s.Alternatives {
			if path, ok := alternative.LocalPath(); ok {
				return path, true
			}
		}
		return "", false
	default:
		return "", false
	}
}

// String renders the declaration in TOML-like form for diagnostics.
func (s DependencySpec) String() string {
	switch s.Kind {
	case ScalarDependency:
		return fmt.Sprintf("%q", s.Scalar)
	case TableDependency:
		keys := make([]string, 0, len(s.Table))
		for key := range s.Table {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, fmt.Sprintf("%s = %s", key, renderValue(s.Table[key])))
		}
		return "{ " + strings.Join(pairs, ", ") + " }"
	case ListDependency:
		items := make([]string, 0, len(s.Alternatives))
		for _, alternative := range s.Alternatives {
			items = append(items, alternative.String())
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return ""
	}
}

func renderValue(value any) string {
	if text, ok := value.(string); ok {
		return fmt.Sprintf("%q", text)
	}
	return fmt.Sprint(value)
}

// PathDependency is a dependency declaration that points at the local filesystem.
type PathDependency struct {
	Name    string // package name, specifier, or module label
	Detail  string // the offending declaration, may be empty
	Section string // manifest section, e.g. "tool.poetry.dependencies"
	File    string // manifest file name
}

// Message is the user-facing removal request for this dependency.
func (d PathDependency) Message() string {
	subject := "'" + d.Name + "'"
	if d.Detail != "" {
		subject += " (" + d.Detail + ")"
	}
	return fmt.Sprintf(
		"Please remove path dependencies %s from [%s] in %s before checkin", subject, d.Section, d.File,
	)
}

// NewPathDependencyError joins the messages of every offending dependency into a single
// KindRejection error. It returns nil when deps is empty.
func NewPathDependencyError(deps []PathDependency) error {
	if len(deps) == 0 {
		return nil
	}
	lines := make([]string, 0, len(deps))
	for _, dep := range deps {
		lines = append(lines, dep.Message())
	}
	return NewRejectionError(strings.Join(lines, "\n"))
}
