package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the lattice CLI with os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree. The logger and the merged config are
// attached to the command context before any subcommand runs.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
		conn       string
		walls      string
		plain      bool
	)

	root := &cobra.Command{
		Use:           "lattice",
		Short:         "Lattice answers path and region questions about text grids",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("conn") {
				cfg.Conn = conn
			}
			if flags.Changed("walls") {
				cfg.Walls = walls
			}
			if plain {
				cfg.Color = false
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			logger.Debug("config", "file", configPath, "conn", cfg.Conn, "walls", cfg.Walls)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lattice %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&configPath, "config", "c", "", "TOML config file")
	pf.StringVar(&conn, "conn", "4", "connectivity: 4 or 8")
	pf.StringVar(&walls, "walls", "#", "runes that block movement")
	pf.BoolVar(&plain, "plain", false, "render without colour")

	root.AddCommand(newPathCmd())
	root.AddCommand(newFillCmd())
	root.AddCommand(newComponentsCmd())
	root.AddCommand(newDistancesCmd())

	return root
}
