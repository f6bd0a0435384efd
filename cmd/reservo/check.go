package main

import (
	"errors"

	"reservo/internal/domains/reservation/model/dto"
	"reservo/internal/domains/reservation/service"

	"github.com/spf13/cobra"
)

var errConflict = errors.New("reservation conflicts")

func newCheckCmd(opts *options) *cobra.Command {
	var (
		req  dto.CheckConflictRequest
		exit bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether a reservation fits its table",
		Example: "  reservo check --floor floor.yaml --reservations booked.json \\\n" +
			"    --table T1 --party 4 --start 2025-03-15T20:00 --duration 90",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}

			req.Snapshot = env.snapshot
			if req.ExcludeID == "" {
				req.ExcludeID = req.Reservation.ID
			}

			res, err := service.New(env.config, env.otel).CheckConflicts(cmd.Context(), req)
			if err != nil {
				return err
			}

			if err := printJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}

			if exit && res.HasConflict {
				return errConflict
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Reservation.ID, "id", "", "reservation id; also the --exclude default when editing a booking in place")
	flags.StringVar(&req.Reservation.TableID, "table", "", "table id")
	flags.IntVar(&req.Reservation.PartySize, "party", 2, "party size")
	flags.StringVar(&req.Reservation.StartTime, "start", "", "start time, RFC3339 or 2006-01-02T15:04 local")
	flags.IntVar(&req.Reservation.DurationMinutes, "duration", 90, "duration in minutes")
	flags.StringVar(&req.ExcludeID, "exclude", "", "reservation id to ignore in the overlap check (defaults to --id)")
	flags.BoolVar(&req.Snap, "snap", false, "snap start and duration to the slot grid")
	flags.BoolVar(&exit, "fail-on-conflict", false, "exit non-zero when a conflict is found")

	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
