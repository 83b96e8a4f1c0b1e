package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g25-tools/g25-averager/g25"
)

func getGroupsCmd() *cobra.Command {
	groupsCmd := &cobra.Command{
		Use:   "groups <input_file>",
		Args:  usageArgs(cobra.ExactArgs(1)),
		Short: "Lists the population groups found in an input file and their sample counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger, err := getLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}

			parsed, err := g25.NewParser(logger, cfg.Strict).ParseFile(args[0])
			if err != nil {
				return err
			}

			groups := g25.Partition(parsed.Samples)
			counts := make([]g25.GroupMean, len(groups))
			for i, g := range groups {
				counts[i] = g25.GroupMean{Key: g.Key, Count: len(g.Samples)}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d samples in %d groups.\n", len(parsed.Samples), len(groups))
			printGroupCounts(cmd.OutOrStdout(), counts)
			return nil
		},
	}

	return groupsCmd
}
