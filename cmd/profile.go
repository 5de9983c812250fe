package cmd

import (
	"github.com/spf13/cobra"
)

var activitiesLimit int

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the authenticated user's profile and settings",
}

var profileGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the authenticated user's profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.User.GetProfile(cmd.Context(), callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var profileSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the authenticated user's settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.User.GetSettings(cmd.Context(), callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var activitiesCmd = &cobra.Command{
	Use:   "activities <playerId>",
	Short: "List recent activity for a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		playerID, err := parseID("player", args[0])
		if err != nil {
			return err
		}

		result, err := client.User.GetActivities(cmd.Context(), playerID, activitiesLimit, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

func init() {
	profileCmd.AddCommand(profileGetCmd, profileSettingsCmd)

	activitiesCmd.Flags().IntVar(&activitiesLimit, "limit", 0, "maximum number of activities (server default when 0)")

	rootCmd.AddCommand(profileCmd, activitiesCmd)
}
