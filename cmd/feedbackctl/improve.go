package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-feedback/internal/feedback/improve"
)

func newImproveCmd(v *viper.Viper) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "improve <sentence>",
		Short: "Rewrite a résumé sentence with stronger, action-led phrasing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(v)
			if err != nil {
				return err
			}
			industry, err := industryFlag(cmd, cfg.Industry)
			if err != nil {
				return err
			}

			var src improve.Source
			if cmd.Flags().Changed("seed") {
				src = improve.NewLockedSource(seed)
			}
			improved := improve.New(src).Improve(strings.Join(args, " "), industry)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), improved)
			return err
		},
	}
	cmd.Flags().StringP("industry", "i", "", "weave in a term for this industry")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the random choices for repeatable output")
	return cmd
}
