package main

import (
	"fmt"
	"os"

	"reservo/internal/domains/importer/model/dto"
	"reservo/internal/domains/importer/service"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *options) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Assign the rows of a CSV file to tables",
		Long: "Rows are processed in file order. Each accepted row is visible to the rows after it.\n" +
			"Columns: name, phone, email, party_size, date, time, duration, table, sector, vip, notes.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(csvPath)
			if err != nil {
				return fmt.Errorf("read csv: %w", err)
			}

			res, err := service.New(env.config, env.otel).ImportCSV(cmd.Context(), dto.CSVImportRequest{
				Snapshot: env.snapshot,
				CSV:      string(data),
			})
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file to import")
	_ = cmd.MarkFlagRequired("csv")

	return cmd
}
