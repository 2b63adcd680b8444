package terraform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// HCLTerraformRepository implements repositories.TerraformRepository with hclparse.
type HCLTerraformRepository struct{}

// NewHCLTerraformRepository creates a new HCLTerraformRepository.
func NewHCLTerraformRepository() repositories.TerraformRepository {
	return &HCLTerraformRepository{}
}

// LoadModules parses every *.tf file directly inside dir, in name order, and returns
// their module blocks. A file with syntax errors yields *entities.ParseError.
func (it *HCLTerraformRepository) LoadModules(dir string) ([]entities.TerraformModule, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), entities.TerraformExtension) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	parser := hclparse.NewParser()
	var modules []entities.TerraformModule
	for _, name := range files {
		content, readErr := os.ReadFile(filepath.Join(dir, name))
		if readErr != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, readErr)
		}

		fileModules, scanErr := scanModules(parser, content, name)
		if scanErr != nil {
			return nil, scanErr
		}
		modules = append(modules, fileModules...)
	}

	return modules, nil
}

// scanModules extracts the module blocks having a literal string source.
func scanModules(parser *hclparse.Parser, content []byte, fileName string) ([]entities.TerraformModule, error) {
	file, diags := parser.ParseHCL(content, fileName)
	if diags.HasErrors() {
		return nil, &entities.ParseError{File: fileName, Err: diags}
	}

	body := file.Body
	if body == nil {
		return nil, nil
	}

	// Get all module blocks from the body
	bodyContent, _, diags := body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "module", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return nil, &entities.ParseError{File: fileName, Err: diags}
	}

	var modules []entities.TerraformModule
	for _, block := range bodyContent.Blocks {
		moduleName := ""
		if len(block.Labels) > 0 {
			moduleName = block.Labels[0]
		}

		attrs, _ := block.Body.JustAttributes()
		sourceAttr, hasSource := attrs["source"]
		if !hasSource {
			continue
		}

		// sources built from variables cannot be checked statically
		sourceVal, valDiags := sourceAttr.Expr.Value(&hcl.EvalContext{})
		if valDiags.HasErrors() || sourceVal.Type() != cty.String ||
			sourceVal.IsNull() || !sourceVal.IsKnown() {
			continue
		}

		modules = append(modules, entities.TerraformModule{
			Name:   moduleName,
			Source: sourceVal.AsString(),
			File:   fileName,
			Line:   block.DefRange.Start.Line,
		})
	}

	return modules, nil
}
