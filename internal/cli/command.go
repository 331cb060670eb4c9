package cli

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"gridrobot/internal/config"
	"gridrobot/internal/logging"
	"gridrobot/internal/robot"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// NewRootCommand builds the gridrobot command tree. Config is read from fsys.
func NewRootCommand(fsys afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:           "gridrobot",
		Short:         "Drive a robot around a 10x10 grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(newRunCommand(fsys), newVersionCommand())
	return root
}

func newRunCommand(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [action...]",
		Short: "Apply actions to a new robot and print where it ends up",
		Long: `Each argument is one call on a robot that starts at the bottom-left
corner facing north: turn (t), move (m) or backtrack (back, b).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, fsys)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log := logging.NewWriter(cmd.ErrOrStderr(), level).With("run", ulid.Make().String())

			actions, err := ParseActions(args)
			if err != nil {
				return err
			}

			rb := robot.New(robot.WithLogger(log))
			runner := NewRunner(rb, cmd.OutOrStdout(), log)
			runner.Strict = cfg.Strict
			runner.Render = cfg.Render
			runner.FrameDelay = cfg.FrameDelay

			log.Info("run started", "actions", len(actions), "strict", cfg.Strict)
			if err := runner.Run(actions); err != nil {
				log.Error("run aborted", "error", err, "state", rb.State())
				return err
			}
			log.Info("run finished", "state", rb.State(), "depth", rb.Depth())
			return runner.Summary()
		},
	}
	cmd.Flags().Bool("strict", false, "Abort on the first illegal move")
	cmd.Flags().Bool("render", false, "Draw the grid after every action")
	return cmd
}

func loadConfig(cmd *cobra.Command, fsys afero.Fs) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(fsys, path)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.LogLevel = f.Value.String()
	}
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if f := cmd.Flags().Lookup("render"); f != nil && f.Changed {
		cfg.Render, _ = cmd.Flags().GetBool("render")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gridrobot",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridrobot version %s\n", Version)
		},
	}
}

