package cmd

import (
	"github.com/spf13/cobra"

	"github.com/offsetkeyz/dupr-api-client/dupr"
)

var (
	clubLimit   int
	clubOffset  int
	memberLimit int
	memberPage  int
	clubLeave   bool
)

var clubCmd = &cobra.Command{
	Use:   "club",
	Short: "Search clubs and manage membership",
}

var clubSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search clubs by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.Clubs.SearchClubs(cmd.Context(), dupr.ClubSearch{
			Query:  args[0],
			Limit:  clubLimit,
			Offset: clubOffset,
		}, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var clubGetCmd = &cobra.Command{
	Use:   "get <clubId>",
	Short: "Show a single club",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clubID, err := parseID("club", args[0])
		if err != nil {
			return err
		}

		result, err := client.Clubs.GetClub(cmd.Context(), clubID, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var clubMembersCmd = &cobra.Command{
	Use:   "members <clubId>",
	Short: "List the members of a club",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clubID, err := parseID("club", args[0])
		if err != nil {
			return err
		}

		result, err := client.Clubs.GetClubMembers(cmd.Context(), clubID, dupr.Page{
			Limit:  memberLimit,
			Offset: memberPage,
		}, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var clubJoinCmd = &cobra.Command{
	Use:   "join <clubId>",
	Short: "Join a club, or leave it with --leave",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clubID, err := parseID("club", args[0])
		if err != nil {
			return err
		}

		var result dupr.Result
		if clubLeave {
			result, err = client.Clubs.LeaveClub(cmd.Context(), clubID, callOptions()...)
		} else {
			result, err = client.Clubs.JoinClub(cmd.Context(), clubID, callOptions()...)
		}
		if err != nil {
			return err
		}

		logger.Info().Int64("clubId", clubID).Bool("leave", clubLeave).Msg("Club membership updated")
		return render(cmd.OutOrStdout(), result)
	},
}

func init() {
	clubSearchCmd.Flags().IntVar(&clubLimit, "limit", dupr.DefaultLimit, "page size")
	clubSearchCmd.Flags().IntVar(&clubOffset, "offset", 0, "page offset")

	clubMembersCmd.Flags().IntVar(&memberLimit, "limit", 0, "page size (server default when 0)")
	clubMembersCmd.Flags().IntVar(&memberPage, "offset", 0, "page offset")

	clubJoinCmd.Flags().BoolVar(&clubLeave, "leave", false, "leave the club instead of joining")

	clubCmd.AddCommand(clubSearchCmd, clubGetCmd, clubMembersCmd, clubJoinCmd)
	rootCmd.AddCommand(clubCmd)
}
