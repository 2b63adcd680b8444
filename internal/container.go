package internal

import (
	"github.com/rios0rios0/guardrails/internal/domain/commands"
	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/infrastructure/controllers"
	"github.com/rios0rios0/guardrails/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}

// InjectAppInternal builds the DIG container and resolves the AppInternal.
// It panics when the wiring is broken, which is a programming error.
func InjectAppInternal() *AppInternal {
	container := dig.New()

	// Register all providers
	if err := RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *AppInternal
	if err := container.Invoke(func(ai *AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}
