package main

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/dataset"
)

func cleanCMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "clean the raw table and write the processed CSV",
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := loadClean()
			if err != nil {
				return err
			}

			targets := dataset.Targets()
			header := append(append([]string{}, m.Names...), targets...)
			rows := make([][]string, len(m.X))
			for i, features := range m.X {
				row := make([]string, 0, len(header))
				for _, v := range features {
					row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
				}
				for _, target := range targets {
					row = append(row, strconv.Itoa(m.Labels[target][i]))
				}
				rows[i] = row
			}

			out := filepath.Join(viper.GetString("out"), "processed_"+filepath.Base(viper.GetString("data")))
			t := &dataset.Table{Header: header, Rows: rows}
			if err := t.Save(out); err != nil {
				return err
			}
			logger.Infof("processed data saved to %s", out)
			return nil
		},
	}
	return cmd
}
