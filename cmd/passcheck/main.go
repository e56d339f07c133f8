// Command passcheck scores passwords, labels crack times and suggests
// stronger variants, either in-process or against a passmeter server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"passmeter/pkg/contextx"
	"passmeter/pkg/logx"
	"passmeter/pkg/meterclient"
)

const (
	RemoteFlag    = "remote"
	TokenFlag     = "token"
	SeedFlag      = "seed"
	ReferenceFlag = "reference"
	JSONFlag      = "json"
	LogLevelFlag  = "log-level"
	CountFlag     = "count"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "passcheck:", err)
		os.Exit(1) //nolint:gocritic
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "passcheck",
		Usage:     "score passwords and suggest stronger ones",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    RemoteFlag,
				Usage:   "base URL of a passmeter server; evaluate locally when empty",
				EnvVars: []string{"PASSCHECK_REMOTE"},
			},
			&cli.StringFlag{
				Name:    TokenFlag,
				Usage:   "bearer token for the remote server",
				EnvVars: []string{"PASSCHECK_TOKEN"},
			},
			&cli.Uint64Flag{
				Name:  SeedFlag,
				Usage: "seed local suggestions for reproducible output",
			},
			&cli.BoolFlag{
				Name:  ReferenceFlag,
				Usage: "include the zxcvbn reference estimate in local reports",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  JSONFlag,
				Usage: "print results as JSON",
			},
			&cli.StringFlag{
				Name:  LogLevelFlag,
				Usage: "debug, info, warn or error",
				Value: "warn",
			},
		},
		Before: func(cCtx *cli.Context) error {
			level, err := logx.ParseLevel(cCtx.String(LogLevelFlag))
			if err != nil {
				return fmt.Errorf("logx.ParseLevel: %w", err)
			}

			log := slog.New(logx.NewHandler(cCtx.App.ErrWriter, "text", level))
			cCtx.Context = contextx.WithLogger(cCtx.Context, log)

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Aliases:   []string{"c"},
				Usage:     "score passwords given as arguments, or one per stdin line",
				ArgsUsage: "[password...]",
				Action:    check,
			},
			{
				Name:      "crack-time",
				Usage:     "label the brute-force time for an entropy in bits",
				ArgsUsage: "bits",
				Action:    crackTime,
			},
			{
				Name:      "suggest",
				Aliases:   []string{"s"},
				Usage:     "derive stronger passwords from a base",
				ArgsUsage: "[base]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    CountFlag,
						Aliases: []string{"n"},
						Usage:   "number of suggestions",
						Value:   3,
					},
				},
				Action: suggestCommand,
			},
			{
				Name:   "generate",
				Usage:  "print one strong password",
				Action: generate,
			},
		},
	}
}

func newBackend(cCtx *cli.Context) backend {
	if remote := cCtx.String(RemoteFlag); remote != "" {
		return meterclient.New(remote, meterclient.WithToken(cCtx.String(TokenFlag)))
	}

	return newLocalBackend(localOptions{
		seed:      cCtx.Uint64(SeedFlag),
		seeded:    cCtx.IsSet(SeedFlag),
		reference: cCtx.Bool(ReferenceFlag),
	})
}
