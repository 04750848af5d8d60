package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	logger  *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "cervical",
	Short: "risk-factor analysis and classifier comparison for cervical cancer screening tests",
	Long: "cervical loads the UCI cervical-cancer risk-factor dataset, cleans it, trains\n" +
		"logistic-regression and random-forest classifiers per screening test, and sweeps\n" +
		"decision thresholds to locate the sensitivity/specificity crossover.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./cervical.yaml)")
	pf.String("data", "risk_factors_cervical_cancer.csv", "path to the risk-factor CSV")
	pf.String("out", ".", "directory for plots and processed files")
	pf.Int64("seed", 42, "random seed")
	pf.Float64("test-ratio", 0.25, "evaluation partition ratio")
	pf.Float64("missing-threshold", 0.9, "drop columns with more than this fraction missing")
	pf.Float64("grid-lo", 0.1, "lowest sweep threshold")
	pf.Float64("grid-hi", 0.5, "highest sweep threshold")
	pf.Float64("grid-step", 0.01, "sweep threshold step")
	pf.Float64("tolerance", 0.01, "crossover tolerance on |sensitivity - specificity|")
	pf.Bool("verbose", false, "debug logging")
	for _, name := range []string{
		"data", "out", "seed", "test-ratio", "missing-threshold",
		"grid-lo", "grid-hi", "grid-step", "tolerance", "verbose",
	} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(cleanCMD(), overviewCMD(), sweepCMD(), tuneCMD(), compareCMD())
}

func initConfig() error {
	viper.SetEnvPrefix("cervical")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetConfigName("cervical")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional unless one was named explicitly.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return err
		}
	}

	logger = newLogger(viper.GetBool("verbose"))
	return nil
}
