package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/worachetdee/lifenovelRN/internal/app"
	"github.com/worachetdee/lifenovelRN/internal/config"
	encryptionUsecase "github.com/worachetdee/lifenovelRN/internal/encryption/usecase"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getKeyCommands()...)
	return cmds
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// withEncryptionUseCase builds a container from the environment, runs fn
// and releases the container, which also wipes the cached master key.
func withEncryptionUseCase(
	ctx context.Context,
	fn func(container *app.Container, useCase encryptionUsecase.EncryptionUseCase) error,
) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	useCase, err := container.EncryptionUseCase()
	if err != nil {
		return err
	}
	return fn(container, useCase)
}
