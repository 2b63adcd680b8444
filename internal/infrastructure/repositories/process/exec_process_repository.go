package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// ExecProcessRepository implements repositories.ProcessRepository with os/exec.
type ExecProcessRepository struct{}

// NewExecProcessRepository creates a new ExecProcessRepository.
func NewExecProcessRepository() repositories.ProcessRepository {
	return &ExecProcessRepository{}
}

// Run executes the program and waits for it to finish.
func (it *ExecProcessRepository) Run(
	ctx context.Context,
	dir, name string,
	args ...string,
) (entities.ProcessResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("Running %s %v", name, args)
	err := cmd.Run()
	result := entities.ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		logger.Debugf("%s exited with status %d", name, result.ExitCode)
		return result, nil
	}
	return result, fmt.Errorf("failed to run %s: %w", name, err)
}
