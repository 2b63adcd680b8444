package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
)

// loadSettings honours the --config flag and falls back to auto-detection.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	settings, err := entities.LoadSettings(path)
	if err != nil {
		return nil, entities.NewUnexpectedError(fmt.Sprintf("failed to load settings: %v", err), err)
	}
	return settings, nil
}

// runCheck executes check and reports its outcome. Every failure, panics included,
// ends as entities.ErrCheckFailed once the diagnostic has been written.
func runCheck(cmd *cobra.Command, subject string, check func() error) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = report(cmd, subject, entities.NewUnexpectedError(
				fmt.Sprintf("%s: %v", subject, recovered), fmt.Errorf("panic: %v", recovered),
			))
		}
	}()
	return report(cmd, subject, check())
}

// report prints user-facing diagnostics to stdout and logs unexpected errors.
func report(cmd *cobra.Command, subject string, err error) error {
	if err == nil {
		return nil
	}

	var checkErr *entities.CheckError
	switch {
	case errors.As(err, &checkErr) && checkErr.Kind != entities.KindUnexpected:
		logger.Debugf("%s check failed (%s)", subject, checkErr.Kind)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), checkErr.Message)
	case checkErr != nil:
		logger.Error(checkErr.Error())
	default:
		logger.Errorf("%s: %v", subject, err)
	}
	return entities.ErrCheckFailed
}

// stringOption returns the flag value when it was set on the command line, else fallback.
func stringOption(cmd *cobra.Command, flag, fallback string) string {
	if !cmd.Flags().Changed(flag) {
		return fallback
	}
	value, _ := cmd.Flags().GetString(flag)
	return value
}
