package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"reservo/config"
	"reservo/infras/otel"
	"reservo/internal/domains/floorplan"
	"reservo/internal/domains/reservation/model/dto"
	"reservo/shared/logger"

	"github.com/spf13/cobra"
)

// options are shared by every subcommand.
type options struct {
	floorPath        string
	reservationsPath string
	verbose          bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "reservo",
		Short:         "Check, suggest and import restaurant reservations against a floor plan",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.InitCLILogger(opts.verbose)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.floorPath, "floor", "floor.yaml", "floor plan YAML file")
	flags.StringVar(&opts.reservationsPath, "reservations", "", "JSON file with existing reservations")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newSuggestCmd(opts))
	root.AddCommand(newImportCmd(opts))

	return root
}

// environment holds what a command needs to call the services.
type environment struct {
	config   *config.Config
	otel     otel.Otel
	snapshot dto.Snapshot
}

func (o *options) load() (environment, error) {
	plan, err := floorplan.Load(o.floorPath)
	if err != nil {
		return environment{}, err
	}

	reservations, err := o.readReservations()
	if err != nil {
		return environment{}, err
	}

	cfg := config.Get()

	return environment{
		config:   cfg,
		otel:     otel.New(cfg),
		snapshot: plan.Snapshot(reservations),
	}, nil
}

func (o *options) readReservations() ([]dto.ReservationPayload, error) {
	if o.reservationsPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(o.reservationsPath)
	if err != nil {
		return nil, fmt.Errorf("read reservations: %w", err)
	}

	var reservations []dto.ReservationPayload
	if err := json.Unmarshal(data, &reservations); err != nil {
		return nil, fmt.Errorf("decode reservations %s: %w", o.reservationsPath, err)
	}

	return reservations, nil
}

func printJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}
