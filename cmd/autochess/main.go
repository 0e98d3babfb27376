package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/chzyer/readline"
	"github.com/san-kum/autochess/internal/config"
	"github.com/san-kum/autochess/internal/console"
	"github.com/san-kum/autochess/internal/engine"
	"github.com/san-kum/autochess/internal/gui"
	"github.com/san-kum/autochess/internal/logging"
	"github.com/san-kum/autochess/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// main builds the command tree and exits 1 when a command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := newOptions()
	var noMenu bool

	play := func(cmd *cobra.Command, args []string) error {
		cfg, lib, err := opts.load()
		if err != nil {
			return err
		}
		// stderr belongs to the alternate screen while the TUI runs
		logger, closer, err := logging.New(cfg.Log, io.Discard)
		if err != nil {
			return err
		}
		defer closer.Close()
		return viz.RunInteractive(cfg, lib, logger, noMenu)
	}

	rootCmd := &cobra.Command{
		Use:          "autochess",
		Short:        "watch recorded chess games play themselves",
		SilenceUsage: true,
		RunE:         play,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.bind(cmd.Flags())
		},
	}
	opts.register(rootCmd.PersistentFlags())

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play games in the terminal UI",
		Args:  cobra.NoArgs,
		RunE:  play,
	}
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().BoolVar(&noMenu, "no-menu", false, "start the selected pairing without the game menu")
	}

	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "play headless, driven by typed commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lib, err := opts.load()
			if err != nil {
				return err
			}
			return runConsole(cmd.Context(), cfg, lib)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "play games in a graphical window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lib, err := opts.load()
			if err != nil {
				return err
			}
			logger, closer, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()
			return gui.Run(cfg, lib, logger.With("mode", "gui"))
		},
	}

	playersCmd := &cobra.Command{
		Use:   "players",
		Short: "list the player roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, lib, err := opts.load()
			if err != nil {
				return err
			}
			return listPlayers(cmd.OutOrStdout(), lib)
		},
	}

	gamesCmd := &cobra.Command{
		Use:   "games",
		Short: "list recorded games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, lib, err := opts.load()
			if err != nil {
				return err
			}
			return listGames(cmd.OutOrStdout(), lib)
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	rootCmd.AddCommand(playCmd, consoleCmd, guiCmd, playersCmd, gamesCmd, configCmd)
	return rootCmd
}

// load resolves the configuration and the game library it names.
func (o *options) load() (*config.Config, *engine.Library, error) {
	cfg, err := o.resolve()
	if err != nil {
		return nil, nil, err
	}
	var lib *engine.Library
	if cfg.Library != "" {
		lib, err = engine.LoadLibrary(cfg.Library)
	} else {
		lib, err = engine.DefaultLibrary()
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, lib, nil
}

func runConsole(ctx context.Context, cfg *config.Config, lib *engine.Library) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "autochess> ",
		AutoComplete:    console.Completer(lib.PlayerNames()),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	logger, closer, err := logging.New(cfg.Log, rl.Stderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	c, err := console.New(cfg, lib, logger.With("mode", "console"), rl.Stdout())
	if err != nil {
		return err
	}
	fmt.Fprintf(rl.Stdout(), "%s vs %s at %.2f/s, type help for commands\n", cfg.White, cfg.Black, cfg.Rate)
	if err := c.Run(ctx, rl); err != nil {
		logger.Error("console stopped", "err", err)
		return err
	}
	return nil
}

func listPlayers(w io.Writer, lib *engine.Library) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, p := range lib.Players {
		fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Description)
	}
	return tw.Flush()
}

func listGames(w io.Writer, lib *engine.Library) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWHITE\tBLACK\tRESULT\tPLIES")
	for _, g := range lib.Games {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", g.Name, g.White, g.Black, g.Result, len(g.Moves))
	}
	return tw.Flush()
}
