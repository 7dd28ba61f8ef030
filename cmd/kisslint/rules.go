package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/kisslint/internal/report"
	"github.com/yacobolo/kisslint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List every rule code with the file it applies to",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false), asFile(w))
		report.PrintRules(w, rules.Catalog(), useColors)
		return nil
	},
}
