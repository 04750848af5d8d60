package main

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/eval"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/model"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/report"
)

func sweepCMD() *cobra.Command {
	var (
		target  string
		family  string
		balance string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep decision thresholds for one target and locate the crossover",
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := loadClean()
			if err != nil {
				return err
			}
			y, ok := m.Labels[target]
			if !ok {
				return errors.Errorf("unknown target %q", target)
			}

			seed := viper.GetInt64("seed")
			clf, set, err := trainEval(m.X, y, family, balance, seed)
			if err != nil {
				return err
			}
			logger.Infof("trained %s for %s on %d rows, evaluating on %d", family, target, len(m.X)-len(set.X), len(set.X))

			table, cross, err := eval.SweepThresholds(clf, set, sweepGrid(), viper.GetFloat64("tolerance"))
			if err != nil {
				return err
			}

			fmt.Printf("%-10s %-10s %-12s %-12s\n", "threshold", "accuracy", "sensitivity", "specificity")
			for _, row := range table {
				fmt.Printf("%-10.2f %-10.3f %-12.3f %-12.3f\n", row.Threshold, row.Accuracy, row.Sensitivity, row.Specificity)
			}
			operating := 0.5
			if cross.Found {
				at := table.Nearest(cross.Threshold)
				fmt.Printf("\ncrossover at %.3f (sensitivity %.3f, specificity %.3f)\n",
					cross.Threshold, at.Sensitivity, at.Specificity)
				operating = cross.Threshold
			} else {
				fmt.Println("\nno crossover found in the grid")
			}

			pred := model.BinaryPredFromProba(clf.PredictProba(set.X), operating)
			prec, rec, f1 := model.PrecisionRecallF1(set.Y, pred)
			fmt.Printf("at %.3f: accuracy %.3f, precision %.3f, recall %.3f, F1 %.3f\n",
				operating, model.Accuracy(set.Y, pred), prec, rec, f1)

			out := filepath.Join(viper.GetString("out"), fmt.Sprintf("sweep_%s_%s.png", target, family))
			if err := report.PlotSweep(table, cross, fmt.Sprintf("%s (%s)", target, family), out); err != nil {
				return err
			}
			logger.Infof("plot saved to %s", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "Biopsy", "diagnostic target column")
	cmd.Flags().StringVar(&family, "model", "forest", "model family: logistic or forest")
	cmd.Flags().StringVar(&balance, "balance", "oversample", "training balance: oversample, smote, or none")
	return cmd
}
