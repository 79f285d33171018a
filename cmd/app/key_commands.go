package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/worachetdee/lifenovelRN/cmd/app/commands"
	"github.com/worachetdee/lifenovelRN/internal/app"
	encryptionUsecase "github.com/worachetdee/lifenovelRN/internal/encryption/usecase"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "Encrypt text with the device master key (reads stdin when --plaintext is omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "plaintext",
					Aliases: []string{"p"},
					Usage:   "Text to encrypt",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				streams := commands.DefaultIO()
				plaintext, err := commands.ReadInput(streams.Reader, cmd.String("plaintext"), cmd.IsSet("plaintext"))
				if err != nil {
					return err
				}
				return withEncryptionUseCase(ctx, func(c *app.Container, uc encryptionUsecase.EncryptionUseCase) error {
					return commands.RunEncrypt(ctx, uc, c.Logger(), streams.Writer, plaintext, cmd.String("format"))
				})
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt an envelope produced by encrypt",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "ciphertext",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Base64 ciphertext",
				},
				&cli.StringFlag{
					Name:     "nonce",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Base64 nonce",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withEncryptionUseCase(ctx, func(c *app.Container, uc encryptionUsecase.EncryptionUseCase) error {
					return commands.RunDecrypt(
						ctx,
						uc,
						c.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("ciphertext"),
						cmd.String("nonce"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "encrypt-group",
			Usage: "Encrypt text with a shared group key (reads stdin when --plaintext is omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "plaintext",
					Aliases: []string{"p"},
					Usage:   "Text to encrypt",
				},
				&cli.StringFlag{
					Name:     "group-key",
					Aliases:  []string{"k"},
					Required: true,
					Sources:  cli.EnvVars("GROUP_KEY"),
					Usage:    "Base64 32-byte group key",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				streams := commands.DefaultIO()
				plaintext, err := commands.ReadInput(streams.Reader, cmd.String("plaintext"), cmd.IsSet("plaintext"))
				if err != nil {
					return err
				}
				return withEncryptionUseCase(ctx, func(c *app.Container, uc encryptionUsecase.EncryptionUseCase) error {
					return commands.RunEncryptGroup(
						ctx,
						uc,
						c.Logger(),
						streams.Writer,
						plaintext,
						cmd.String("group-key"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "decrypt-group",
			Usage: "Decrypt an envelope produced by encrypt-group",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "ciphertext",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Base64 ciphertext",
				},
				&cli.StringFlag{
					Name:     "nonce",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Base64 nonce",
				},
				&cli.StringFlag{
					Name:     "group-key",
					Aliases:  []string{"k"},
					Required: true,
					Sources:  cli.EnvVars("GROUP_KEY"),
					Usage:    "Base64 32-byte group key",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withEncryptionUseCase(ctx, func(c *app.Container, uc encryptionUsecase.EncryptionUseCase) error {
					return commands.RunDecryptGroup(
						ctx,
						uc,
						c.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("ciphertext"),
						cmd.String("nonce"),
						cmd.String("group-key"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "create-group-key",
			Usage: "Generate a random 32-byte group key",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateGroupKey(commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
		{
			Name:  "forget-master-key",
			Usage: "Delete the device master key. Everything encrypted with it becomes unreadable",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "yes",
					Usage: "Skip the confirmation prompt",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withEncryptionUseCase(ctx, func(c *app.Container, uc encryptionUsecase.EncryptionUseCase) error {
					return commands.RunForgetMasterKey(
						ctx,
						uc,
						c.Logger(),
						commands.DefaultIO(),
						cmd.Bool("yes"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
