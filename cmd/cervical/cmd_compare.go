package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/dataset"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/eval"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/report"
)

type comparison struct {
	target      string
	family      string
	prevalence  float64
	cross       eval.Crossover
	sensitivity float64
	specificity float64
}

func compareCMD() *cobra.Command {
	var balance string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "run the full pipeline for every target and both model families",
		Long: "compare trains logistic regression and a random forest for each of the four\n" +
			"screening tests, sweeps thresholds on the held-out partition, and ranks the\n" +
			"targets by sensitivity at the crossover operating point.",
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := loadClean()
			if err != nil {
				return err
			}
			seed := viper.GetInt64("seed")
			grid := sweepGrid()
			tolerance := viper.GetFloat64("tolerance")

			var rows []comparison
			for _, target := range dataset.Targets() {
				y := m.Labels[target]
				for _, family := range []string{"logistic", "forest"} {
					clf, set, err := trainEval(m.X, y, family, balance, seed)
					if err != nil {
						return err
					}
					table, cross, err := eval.SweepThresholds(clf, set, grid, tolerance)
					if err != nil {
						return err
					}

					row := comparison{
						target:     target,
						family:     family,
						prevalence: report.Prevalence(y),
						cross:      cross,
					}
					if cross.Found {
						at := table.Nearest(cross.Threshold)
						row.sensitivity = at.Sensitivity
						row.specificity = at.Specificity
					}
					rows = append(rows, row)

					out := filepath.Join(viper.GetString("out"), fmt.Sprintf("sweep_%s_%s.png", target, family))
					if err := report.PlotSweep(table, cross, fmt.Sprintf("%s (%s)", target, family), out); err != nil {
						return err
					}
					logger.Debugf("plot saved to %s", out)
				}
			}

			// Crossovers first, best balanced sensitivity on top.
			sort.SliceStable(rows, func(i, j int) bool {
				if rows[i].cross.Found != rows[j].cross.Found {
					return rows[i].cross.Found
				}
				return rows[i].sensitivity > rows[j].sensitivity
			})

			fmt.Printf("%-12s %-10s %-11s %-10s %-12s %-12s\n",
				"target", "model", "prevalence", "crossover", "sensitivity", "specificity")
			for _, r := range rows {
				if r.cross.Found {
					fmt.Printf("%-12s %-10s %-11.3f %-10.3f %-12.3f %-12.3f\n",
						r.target, r.family, r.prevalence, r.cross.Threshold, r.sensitivity, r.specificity)
				} else {
					fmt.Printf("%-12s %-10s %-11.3f %-10s %-12s %-12s\n",
						r.target, r.family, r.prevalence, "none", "-", "-")
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&balance, "balance", "oversample", "training balance: oversample, smote, or none")
	return cmd
}
