package main

import (
	"context"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/sandevgo/patterns/internal/config"
	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/session"
	"github.com/sandevgo/patterns/internal/transport/cli"
	"github.com/sandevgo/patterns/pkg/log"
	"github.com/sandevgo/patterns/pkg/srv"
	"github.com/spf13/cobra"
)

type console interface {
	core.Console
	Close() error
}

func initEnv(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}

// loadConfig reads the runtime .env before parsing. A broken .env is not
// fatal; the environment alone still configures the app.
func loadConfig(ctx context.Context) (*config.AppConfig, error) {
	_ = initEnv(ctx, config.GetEnvFilePath())
	return config.ParseAppConfig()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newConsole(cfg core.AppConfig, in io.Reader, out io.Writer) (console, error) {
	if cfg.IsPlainConsole() || !isTerminal(in) {
		return cli.NewPlain(in, out), nil
	}
	return cli.NewReadLine()
}

func runDemo(cmd *cobra.Command, d demo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var flushLog func()
	ctx, flushLog = setupLogger(ctx, cfg)
	defer flushLog()

	logger := log.FromCtx(ctx)
	logger.Debug().Str("demo", d.name).Bool("plain", cfg.IsPlainConsole()).Msg("starting demo")

	con, err := newConsole(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		logger.Error().Err(err).Msg("failed to open console")
		return err
	}

	return srv.Run(ctx,
		srv.NewCleanup(con.Close),
		session.NewService(d.new(), con),
	)
}
