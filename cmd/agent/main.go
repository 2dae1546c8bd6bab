package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/petasbytes/tool-loop/internal/config"
	"github.com/petasbytes/tool-loop/internal/provider"
	"github.com/petasbytes/tool-loop/internal/runner"
	"github.com/petasbytes/tool-loop/internal/telemetry"
	"github.com/petasbytes/tool-loop/memory"
	"github.com/petasbytes/tool-loop/tools"
)

type flags struct {
	prompt     string
	model      string
	provider   string
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "agent",
		Short:         "Answer a prompt, letting the model run shell commands and read or write files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&f.prompt, "prompt", "p", "", "prompt to send to the model")
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "model id (default $USE_LLM or "+config.DefaultModel+")")
	cmd.Flags().StringVar(&f.provider, "provider", "", "backend: openai or anthropic (default $AGT_PROVIDER or openai)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file (default $AGT_CONFIG or "+config.DefaultFile+")")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "log loop and tool activity to stderr")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}

func run(ctx context.Context, f flags, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(config.Options{File: f.configPath, Provider: f.provider})
	if err != nil {
		return err
	}
	if f.model != "" {
		cfg.Model = f.model
	}
	if err := cfg.Finalize(); err != nil {
		return err
	}

	backend, err := provider.New(cfg)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "provider", cfg.Provider, "model", cfg.Model, "shell", cfg.Shell)

	ctx = telemetry.WithTurnID(ctx, telemetry.NewTurnID())
	telemetry.EmitPromptFeatures(ctx, f.prompt)

	conv := memory.New(f.prompt, tools.Registry())
	r := runner.New(backend, tools.NewDispatcher(cfg.Shell, logger), cfg.Model, runner.WithLogger(logger))
	answer, err := r.Run(ctx, conv)
	if err != nil {
		return err
	}
	if answer != "" {
		fmt.Fprintln(stdout, answer)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
