package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/dataset"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/report"
)

func overviewCMD() *cobra.Command {
	var topN int
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "per-target prevalence and top covariate associations",
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := loadClean()
			if err != nil {
				return err
			}

			for _, target := range dataset.Targets() {
				y := m.Labels[target]
				s := report.Summarize(target, y)
				fmt.Printf("\n%s: %d/%d positive (%.1f%%)\n", s.Target, s.Positives, s.Rows, s.Prevalence*100)

				assoc := report.Associations(m.X, y, m.Names)
				if topN < len(assoc) {
					assoc = assoc[:topN]
				}
				for _, a := range assoc {
					fmt.Printf("  %-35s %+.3f  [%g, %g]\n", a.Name, a.Corr, a.Min, a.Max)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&topN, "top", 10, "number of covariates to list per target")
	return cmd
}
