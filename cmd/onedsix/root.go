package main

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/onedsix/internal/cli"
	"github.com/KirkDiggler/onedsix/internal/config"
	apperrors "github.com/KirkDiggler/onedsix/internal/errors"
	"github.com/KirkDiggler/onedsix/internal/logging"
	"github.com/KirkDiggler/onedsix/internal/uuid"
)

// errRollsFailed is returned after the failures were already printed per expression
var errRollsFailed = errors.New("one or more dice expressions failed")

// Execute loads configuration and runs the root command
func Execute() error {
	// A missing .env file is fine, the environment alone is enough
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return newRootCmd(cfg, envErr).Execute()
}

// newRootCmd builds the command. envErr is the result of loading .env, logged once logging is set up.
func newRootCmd(cfg *config.Config, envErr error) *cobra.Command {
	var (
		faceType  string
		perDie    bool
		seed      uint64
		verbosity int
	)

	cmd := &cobra.Command{
		Use:   "onedsix DICE...",
		Short: "Rolls some dice",
		Long: `onedsix rolls dice written in NdM notation, e.g. 3d6 or 1d20.

Each expression is printed as "<expression>: <total>" on stdout, or
"<expression>: <error>" on stderr when it cannot be parsed. The exit code is
1 if any expression failed.`,
		Example: `  onedsix 3d6 1d20
  onedsix --complex 4d6
  onedsix --type uint8 --seed 42 2d100`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.SetupLogger(cmd.ErrOrStderr(), verbosity)
			logger.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			if envErr != nil {
				logger.Debug().Err(envErr).Msg("No .env file loaded, using environment only")
			} else {
				logger.Debug().Msg("Loaded .env file")
			}

			rollLogger := logging.GetLogger("dice")
			runner, err := cli.NewRunner(&cli.RunnerConfig{
				FaceType: cli.FaceType(faceType),
				Complex:  perDie,
				Seed:     seed,
				Stdout:   cmd.OutOrStdout(),
				Stderr:   cmd.ErrOrStderr(),
				Logger:   &rollLogger,
				IDs:      uuid.NewGoogleUUIDGenerator(),
			})
			if err != nil {
				return err
			}

			if err := runner.Run(args); err != nil {
				logger.Debug().Err(err).Interface("meta", apperrors.GetMeta(err)).Msg("Some rolls failed")
				return errRollsFailed
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&faceType, "type", "t", cfg.Roll.FaceType, "Face type to roll with")
	flags.BoolVarP(&perDie, "complex", "c", cfg.Roll.Complex, "Print each cast die instead of the total")
	flags.Uint64Var(&seed, "seed", cfg.Roll.Seed, "Seed for reproducible rolls (0 picks a random seed)")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	// -v counts up from the configured verbosity
	verbosity = cfg.Logging.Verbosity

	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(cli.FaceTypes))
		for i, faceType := range cli.FaceTypes {
			names[i] = string(faceType)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
