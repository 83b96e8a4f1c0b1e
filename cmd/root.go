package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cosmossdk.io/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/g25-tools/g25-averager/config"
	"github.com/g25-tools/g25-averager/g25"
	"github.com/g25-tools/g25-averager/g25/types"
)

const (
	flagConfig    = "config"
	flagMode      = "mode"
	flagOut       = "out"
	flagLabel     = "label"
	flagSummary   = "summary"
	flagPrecision = "precision"
	flagStrict    = "strict"
	flagOverwrite = "overwrite"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"

	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// NewRootCmd returns the g25-averager command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "g25-averager <input_file>",
		Args:  usageArgs(cobra.ExactArgs(1)),
		Short: "Average G25 coordinates across samples or population groups",
		Long: `Reads a file of G25 coordinate lines (name followed by 25 comma-separated
values), averages them and appends the labeled result to an output file.

In simple mode every sample has equal weight. In grouped mode samples are
first averaged per population (the name up to the first ':' or, failing
that, the first '_'), and the population means are then averaged with
equal weight.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          averageCmdHandler,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "optional TOML configuration file")
	rootCmd.PersistentFlags().Bool(flagStrict, false, "abort on the first malformed line instead of skipping it")
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "logging level")
	rootCmd.PersistentFlags().String(flagLogFormat, config.LogFormatText, "logging format; must be either json or text")

	rootCmd.Flags().String(flagMode, types.ModeSimple.String(), "averaging mode; must be either simple or grouped")
	rootCmd.Flags().String(flagOut, "", "output file (default <input_file>"+config.DefaultOutputSuffix+")")
	rootCmd.Flags().String(flagLabel, "", "name of the averaged sample; prompted for when empty")
	rootCmd.Flags().String(flagSummary, "", "write a YAML run summary to this file")
	rootCmd.Flags().Int(flagPrecision, g25.ShortestPrecision, "decimals per coordinate; -1 writes the shortest exact value")
	rootCmd.Flags().Bool(flagOverwrite, false, "replace the output file instead of appending to it")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return types.ErrUsage.Wrap(err.Error())
	})

	rootCmd.AddCommand(getGroupsCmd())

	return rootCmd
}

// Execute runs the command tree with the given arguments and streams and
// returns the process exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	c, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(errOut, "Error: %s\n", err)
	code := ExitCode(err)
	if code == exitUsage && c != nil {
		fmt.Fprintf(errOut, "\n%s", c.UsageString())
	}
	return code
}

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.IsOf(err, types.ErrUsage, types.ErrConfig, types.ErrInvalidLabel):
		return exitUsage
	default:
		return exitFailure
	}
}

func usageArgs(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := args(cmd, a); err != nil {
			return types.ErrUsage.Wrap(err.Error())
		}
		return nil
	}
}

// loadConfig reads the --config file, if any, with explicitly set flags
// taking precedence over its values.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(configPath, cmd.Flags())
}

func getLogger(w io.Writer, cfg config.Log) (zerolog.Logger, error) {
	logLvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, types.ErrConfig.Wrapf("invalid logging level: %s", cfg.Level)
	}

	var logWriter io.Writer
	switch strings.ToLower(cfg.Format) {
	case config.LogFormatJSON:
		logWriter = w

	case config.LogFormatText:
		logWriter = zerolog.ConsoleWriter{Out: w}

	default:
		return zerolog.Logger{}, types.ErrConfig.Wrapf("invalid logging format: %s", cfg.Format)
	}

	return zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger(), nil
}
