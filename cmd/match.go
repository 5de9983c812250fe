package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/offsetkeyz/dupr-api-client/dupr"
)

var (
	matchPlayer   int64
	matchClub     int64
	matchEvent    int64
	matchLimit    int
	matchOffset   int
	matchVerified bool
	matchUpdate   bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Record, search and inspect matches",
}

var matchGetCmd = &cobra.Command{
	Use:   "get <matchId>",
	Short: "Show a single match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matchID, err := parseID("match", args[0])
		if err != nil {
			return err
		}

		result, err := client.Matches.GetMatch(cmd.Context(), matchID, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var matchSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search matches by player, club or event",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		search := dupr.MatchSearch{
			PlayerID: optionalID(matchPlayer),
			ClubID:   optionalID(matchClub),
			EventID:  optionalID(matchEvent),
			Limit:    matchLimit,
			Offset:   matchOffset,
		}

		result, err := client.Matches.SearchMatches(cmd.Context(), search, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var matchSaveCmd = &cobra.Command{
	Use:   "save <file.json>",
	Short: "Record a match from a JSON file (use - for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if matchVerified && matchUpdate {
			return fmt.Errorf("--verified and --update cannot be combined")
		}

		payload, err := readJSONFile(args[0])
		if err != nil {
			return err
		}

		save := client.Matches.SaveMatch
		switch {
		case matchVerified:
			save = client.Matches.SaveVerifiedMatch
		case matchUpdate:
			save = client.Matches.UpdateMatch
		}

		result, err := save(cmd.Context(), payload, callOptions()...)
		if err != nil {
			return err
		}

		logger.Info().Bool("verified", matchVerified).Bool("update", matchUpdate).Msg("Match saved")
		return render(cmd.OutOrStdout(), result)
	},
}

var matchDeleteCmd = &cobra.Command{
	Use:   "delete <matchId>",
	Short: "Delete a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matchID, err := parseID("match", args[0])
		if err != nil {
			return err
		}

		result, err := client.Matches.DeleteMatch(cmd.Context(), matchID, callOptions()...)
		if err != nil {
			return err
		}

		logger.Info().Int64("matchId", matchID).Msg("Match deleted")
		return render(cmd.OutOrStdout(), result)
	},
}

var matchSimulateCmd = &cobra.Command{
	Use:   "simulate <file.json>",
	Short: "Simulate the rating impact of a hypothetical match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readJSONFile(args[0])
		if err != nil {
			return err
		}

		result, err := client.Matches.GetMatchRatingImpact(cmd.Context(), payload, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

func init() {
	matchSearchCmd.Flags().Int64Var(&matchPlayer, "player", 0, "only matches involving this player")
	matchSearchCmd.Flags().Int64Var(&matchClub, "club", 0, "only matches recorded in this club")
	matchSearchCmd.Flags().Int64Var(&matchEvent, "event", 0, "only matches from this event")
	matchSearchCmd.Flags().IntVar(&matchLimit, "limit", dupr.DefaultLimit, "page size")
	matchSearchCmd.Flags().IntVar(&matchOffset, "offset", 0, "page offset")

	matchSaveCmd.Flags().BoolVar(&matchVerified, "verified", false, "submit as a verified match")
	matchSaveCmd.Flags().BoolVar(&matchUpdate, "update", false, "update an existing match instead of creating one")

	matchCmd.AddCommand(matchGetCmd, matchSearchCmd, matchSaveCmd, matchDeleteCmd, matchSimulateCmd)
	rootCmd.AddCommand(matchCmd)
}
