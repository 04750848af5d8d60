package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/tune"
)

func tuneCMD() *cobra.Command {
	var (
		target      string
		folds       int
		randomCount int
	)
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "grid or random search over random-forest hyperparameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadClean()
			if err != nil {
				return err
			}
			y, ok := m.Labels[target]
			if !ok {
				return errors.Errorf("unknown target %q", target)
			}

			grid := tune.Grid{
				NEstimators:     []int{50, 100, 200},
				MaxDepth:        []int{0, 5, 10},
				MinSamplesSplit: []int{2, 5, 10},
				MaxFeatures:     []int{0, 6},
			}
			seed := viper.GetInt64("seed")

			var (
				best    tune.Result
				results []tune.Result
			)
			if randomCount > 0 {
				logger.Infof("random search: %d candidates, %d folds", randomCount, folds)
				best, results, err = tune.RandomSearch(cmd.Context(), m.X, y, grid, randomCount, folds, seed)
			} else {
				logger.Infof("grid search: %d folds", folds)
				best, results, err = tune.GridSearch(cmd.Context(), m.X, y, grid, folds, seed)
			}
			if err != nil {
				return err
			}

			fmt.Printf("%-12s %-9s %-17s %-12s %-12s %-10s\n",
				"n-estimators", "max-depth", "min-samples-split", "max-features", "sensitivity", "accuracy")
			for _, r := range results {
				fmt.Printf("%-12d %-9d %-17d %-12d %-12.3f %-10.3f\n",
					r.Params.NEstimators, r.Params.MaxDepth, r.Params.MinSamplesSplit, r.Params.MaxFeatures,
					r.MeanSensitivity, r.MeanAccuracy)
			}
			fmt.Printf("\nbest for %s: %+v (sensitivity %.3f, accuracy %.3f)\n",
				target, best.Params, best.MeanSensitivity, best.MeanAccuracy)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "Biopsy", "diagnostic target column")
	cmd.Flags().IntVar(&folds, "folds", 5, "cross-validation folds")
	cmd.Flags().IntVar(&randomCount, "random", 0, "sample this many candidates instead of the full grid")
	return cmd
}
