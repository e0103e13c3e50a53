package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/sandevgo/patterns/internal/config"
	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/ui"
	"github.com/sandevgo/patterns/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:           core.AppName,
	Short:         "Patterns: interactive design-pattern demos",
	Long:          `Patterns runs small console programs, one per design pattern, that read commands and mutate an in-memory model.`,
	Version:       core.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(cmd.InOrStdin()) {
			return cmd.Help()
		}

		id, err := ui.RunPicker("Choose a demo", demoChoices())
		if errors.Is(err, ui.ErrPickerCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		d, ok := findDemo(id)
		if !ok {
			return cmd.Help()
		}
		return runDemo(cmd, d)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")

	CustomizeHelp(rootCmd)
}

func setupLogger(ctx context.Context, cfg *config.AppConfig) (context.Context, func()) {
	if debug {
		cfg.Debug = true
	}
	return log.NewContextWithLogger(ctx, config.LogOptions(cfg))
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces | StyleFlag}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
