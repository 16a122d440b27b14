package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gambitchess/gambit/internal/config"
	"github.com/gambitchess/gambit/pkg/engine"
	"github.com/gambitchess/gambit/pkg/uci"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	var verbose bool

	var cmd = &cobra.Command{
		Use:           "gambit",
		Short:         "Gambit UCI chess engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var level = slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			var logger = slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level}))

			var eng = engine.NewEngine(logger)
			defer eng.Close()

			if configPath != "" {
				var f, err = config.Load(configPath)
				if err != nil {
					return err
				}
				f.Apply(eng.Options(), logger)
			}

			uci.New(eng, os.Stdout).Run(os.Stdin, logger)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML option overrides")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print engine name and version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%v %v by %v\n", engine.Name, engine.Version, engine.Author)
		},
	}
}
