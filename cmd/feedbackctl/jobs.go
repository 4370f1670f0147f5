package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-feedback/internal/feedback"
	"resume-feedback/internal/feedback/jobs"
)

func newJobsCmd() *cobra.Command {
	var score int
	cmd := &cobra.Command{
		Use:   "jobs [file]",
		Short: "Recommend job titles for a résumé",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readResume(cmd, path)
			if err != nil {
				return err
			}

			overall := score
			if !cmd.Flags().Changed("score") {
				overall = feedback.Analyze(text, "").OverallScore
			} else if overall < 0 || overall > 100 {
				return fmt.Errorf("--score must be between 0 and 100, got %d", overall)
			}
			for _, title := range jobs.Recommend(text, overall) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), title); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&score, "score", 0, "use this overall score instead of computing it")
	return cmd
}

func newIndustriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "industries",
		Short: "List recognised industry tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, tag := range feedback.Industries() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), tag); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
