package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/g25-tools/g25-averager/config"
	"github.com/g25-tools/g25-averager/g25"
	"github.com/g25-tools/g25-averager/g25/types"
	"github.com/g25-tools/g25-averager/label"
)

func averageCmdHandler(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := getLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	inputPath := args[0]
	parsed, err := g25.NewParser(logger, cfg.Strict).ParseFile(inputPath)
	if err != nil {
		return err
	}

	res, err := g25.Average(parsed.Samples, cfg.Mode)
	if err != nil {
		return err
	}

	name, err := labelProvider(cmd, cfg).Label()
	if err != nil {
		return err
	}
	if err := g25.ValidateLabel(name); err != nil {
		return err
	}

	// The summary goes first so a failure there leaves the output file as it was.
	if cfg.Summary != "" {
		if err := g25.NewSummary(inputPath, name, parsed, res).WriteFile(cfg.Summary); err != nil {
			return err
		}
	}

	line := g25.FormatLine(name, res.Vector, cfg.Precision)
	outPath := cfg.OutputPath(inputPath)
	if err := g25.WriteLine(outPath, line, cfg.Overwrite); err != nil {
		return err
	}

	logger.Info().
		Str("mode", res.Mode.String()).
		Int("samples", res.Samples).
		Int("skipped", len(parsed.Skipped)).
		Int("groups", len(res.Groups)).
		Str("out", outPath).
		Msg("averaged samples")

	printReport(cmd.OutOrStdout(), res, line, outPath)
	return nil
}

func labelProvider(cmd *cobra.Command, cfg config.Config) label.Provider {
	if cfg.Label != "" {
		return label.Static(cfg.Label)
	}
	return label.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
}

func printReport(w io.Writer, res g25.Result, line, outPath string) {
	if res.Mode == types.ModeGrouped {
		fmt.Fprintf(w, "\nAveraged %d samples using grouped mode (equal weight per group).\n", res.Samples)
		printGroupCounts(w, res.Groups)
	} else {
		fmt.Fprintf(w, "\nAveraged %d samples (simple).\n", res.Samples)
	}

	fmt.Fprintf(w, "\nResult:\n%s\n", line)
	fmt.Fprintf(w, "\nSaved to: %s\n", outPath)
}

func printGroupCounts(w io.Writer, groups []g25.GroupMean) {
	fmt.Fprintln(w, "Group counts:")
	for _, g := range groups {
		fmt.Fprintf(w, "  - %s: %d\n", g.Key, g.Count)
	}
}
