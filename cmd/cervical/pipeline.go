package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/dataprep"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/dataset"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/eval"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/model"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/sampling"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/stats"
)

func loadClean() (*dataprep.Matrix, error) {
	path := viper.GetString("data")
	t, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded %d rows, %d columns from %s", t.NumRows(), t.NumCols(), path)

	m, rep, err := dataprep.Clean(t, dataset.Targets(), dataprep.Options{
		DropThreshold: viper.GetFloat64("missing-threshold"),
	})
	if err != nil {
		return nil, err
	}
	for _, c := range rep.DroppedColumns {
		logger.Infof("dropped column %q (mostly missing)", c)
	}
	for name, n := range rep.Imputed {
		logger.Debugf("imputed %d cells in %q with the column median", n, name)
	}
	logger.Infof("cleaned: %d rows kept, %d dropped, %d features", len(m.X), rep.DroppedRows, len(m.Names))
	return m, nil
}

func sweepGrid() []float64 {
	return eval.UniformGrid(
		viper.GetFloat64("grid-lo"),
		viper.GetFloat64("grid-hi"),
		viper.GetFloat64("grid-step"),
	)
}

// trainEval splits the data, balances the training partition only, trains
// the chosen model family, and returns it with the untouched evaluation
// partition.
func trainEval(X [][]float64, y []int, family, balance string, seed int64) (model.Classifier, eval.EvaluationSet, error) {
	XTrain, XTest, yTrain, yTest := sampling.StratifiedSplit(X, y, viper.GetFloat64("test-ratio"), seed)

	if family == "logistic" {
		// Gradient descent needs standardized covariates. The scaler is
		// fit on the training partition alone.
		sc := stats.NewStandardScaler()
		XTrain = sc.FitTransform(XTrain)
		XTest = sc.Transform(XTest)
	}

	var err error
	switch balance {
	case "smote":
		XTrain, yTrain, err = sampling.SMOTE(XTrain, yTrain, 5, seed)
		if err != nil {
			return nil, eval.EvaluationSet{}, err
		}
	case "oversample":
		XTrain, yTrain = sampling.Oversample(XTrain, yTrain, seed)
	case "none":
	default:
		return nil, eval.EvaluationSet{}, errors.Errorf("unknown balance strategy %q", balance)
	}

	var clf model.Classifier
	switch family {
	case "logistic":
		clf = model.NewLogisticRegression(0.1, 300, 32, seed)
	case "forest":
		clf = model.NewRandomForest(
			model.WithNEstimators(100),
			model.WithForestMaxDepth(8),
			model.WithForestRandomState(seed),
		)
	default:
		return nil, eval.EvaluationSet{}, errors.Errorf("unknown model family %q", family)
	}
	if err := clf.Fit(XTrain, yTrain); err != nil {
		return nil, eval.EvaluationSet{}, err
	}
	return clf, eval.EvaluationSet{X: XTest, Y: yTest}, nil
}
