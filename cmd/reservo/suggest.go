package main

import (
	"reservo/internal/domains/reservation/model/dto"
	"reservo/internal/domains/reservation/service"

	"github.com/spf13/cobra"
)

func newSuggestCmd(opts *options) *cobra.Command {
	var req dto.SuggestTablesRequest

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank the tables that can seat a party",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}

			req.Snapshot = env.snapshot

			res, err := service.New(env.config, env.otel).SuggestTables(cmd.Context(), req)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&req.PartySize, "party", 2, "party size")
	flags.StringVar(&req.StartTime, "start", "", "start time, RFC3339 or 2006-01-02T15:04 local")
	flags.IntVar(&req.DurationMinutes, "duration", 90, "duration in minutes")
	flags.StringSliceVar(&req.PreferredSectorIDs, "sector", nil, "preferred sector ids")
	flags.StringVar(&req.ExcludeReservationID, "exclude", "", "reservation id to ignore")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}
