package main

import (
	"fmt"
	"strings"

	"github.com/fitcoach-io/fitcoach/internal/subscription"
	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Print the subscription catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "ID\tPRICE\tDIETS\tWORKOUTS\tCHANGE_DIET\tSUPPLEMENTS\tMIN_MONTHS")
		for _, p := range subscription.Catalog() {
			fmt.Fprintf(out, "%s\t%.2f\t%s\t%s\t%t\t%t\t%d\n",
				p.ID, p.Price, p.Limits.DietsPerMonth, p.Limits.WorkoutsPerMonth,
				p.Limits.CanChangeDiet, p.Limits.SupplementConsultation, p.MinimumMonths)
			if verbose {
				fmt.Fprintf(out, "  %s\n", strings.Join(p.Features, "; "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plansCmd)
}
