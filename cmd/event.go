package cmd

import (
	"github.com/spf13/cobra"

	"github.com/offsetkeyz/dupr-api-client/dupr"
)

var (
	eventClub    int64
	eventStatus  string
	eventLimit   int
	eventOffset  int
	bracketLimit int
	bracketPage  int
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Search events and inspect brackets",
}

var eventSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search events by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.Events.SearchEvents(cmd.Context(), dupr.EventSearch{
			Query:  args[0],
			ClubID: optionalID(eventClub),
			Status: optionalString(eventStatus),
			Limit:  eventLimit,
			Offset: eventOffset,
		}, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var eventGetCmd = &cobra.Command{
	Use:   "get <eventId>",
	Short: "Show a single event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := parseID("event", args[0])
		if err != nil {
			return err
		}

		result, err := client.Events.GetEvent(cmd.Context(), eventID, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var bracketCmd = &cobra.Command{
	Use:   "bracket <bracketId>",
	Short: "Show a bracket and its matches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bracketID, err := parseID("bracket", args[0])
		if err != nil {
			return err
		}

		result, err := client.Brackets.GetBracketMatches(cmd.Context(), bracketID, dupr.Page{
			Limit:  bracketLimit,
			Offset: bracketPage,
		}, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

func init() {
	eventSearchCmd.Flags().Int64Var(&eventClub, "club", 0, "only events hosted by this club")
	eventSearchCmd.Flags().StringVar(&eventStatus, "status", "", "only events in this status")
	eventSearchCmd.Flags().IntVar(&eventLimit, "limit", dupr.DefaultLimit, "page size")
	eventSearchCmd.Flags().IntVar(&eventOffset, "offset", 0, "page offset")

	bracketCmd.Flags().IntVar(&bracketLimit, "limit", 0, "page size (server default when 0)")
	bracketCmd.Flags().IntVar(&bracketPage, "offset", 0, "page offset")

	eventCmd.AddCommand(eventSearchCmd, eventGetCmd, bracketCmd)
	rootCmd.AddCommand(eventCmd)
}
