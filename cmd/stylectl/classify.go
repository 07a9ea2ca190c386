package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stylelove/internal/bodytype"
)

var (
	shoulderHipRatio string
	volumeArea       string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify quiz answers without touching the database",
	Example: `  stylectl classify --shoulder-hip-ratio about_same --volume-area balanced
  stylectl classify --volume-area middle`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&shoulderHipRatio, "shoulder-hip-ratio", "", "about_same, hips_wider or shoulders_wider")
	classifyCmd.Flags().StringVar(&volumeArea, "volume-area", "", "balanced, bottom, middle or top")
}

func runClassify(cmd *cobra.Command, args []string) error {
	bt, rule := bodytype.Explain(bodytype.Answers{
		ShoulderHipRatio: shoulderHipRatio,
		VolumeArea:       volumeArea,
	})
	fmt.Fprintf(cmd.OutOrStdout(), "%s (rule: %s)\n", bt, rule)
	return nil
}
