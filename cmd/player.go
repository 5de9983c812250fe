package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/offsetkeyz/dupr-api-client/dupr"
)

// maxConcurrentLookups bounds in-flight requests for multi-ID commands
const maxConcurrentLookups = 4

var (
	playerLimit   int
	playerOffset  int
	playerHistory bool
	historyLimit  int
	historyOffset int
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Search and inspect players",
}

var playerSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search players by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.Players.SearchPlayers(cmd.Context(), dupr.PlayerSearch{
			Query:  args[0],
			Limit:  playerLimit,
			Offset: playerOffset,
		}, callOptions()...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result)
	},
}

var playerGetCmd = &cobra.Command{
	Use:   "get <playerId>...",
	Short: "Show one or more players",
	Long: `Show one or more players. Several IDs are fetched concurrently and
printed in the order given. With --history the rating history of a single
player is shown instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := parseID("player", arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}

		if playerHistory {
			if len(ids) != 1 {
				return fmt.Errorf("--history takes exactly one player ID")
			}
			result, err := client.Players.GetPlayerHistory(cmd.Context(), ids[0], dupr.Page{
				Limit:  historyLimit,
				Offset: historyOffset,
			}, callOptions()...)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), result)
		}

		results, err := fetchPlayers(cmd.Context(), client.Players, ids)
		if err != nil {
			return err
		}

		if len(results) == 1 {
			return render(cmd.OutOrStdout(), results[0])
		}

		players := make([]any, len(results))
		for i, res := range results {
			players[i] = res.Value()
		}
		return render(cmd.OutOrStdout(), dupr.Result{"result": players})
	},
}

// playerGetter is the slice of the players namespace that fetchPlayers needs
type playerGetter interface {
	GetPlayer(ctx context.Context, playerID int64, opts ...dupr.CallOption) (dupr.Result, error)
}

// fetchPlayers looks up several players concurrently, preserving input order.
// The first failure cancels the remaining lookups.
func fetchPlayers(ctx context.Context, players playerGetter, ids []int64) ([]dupr.Result, error) {
	results := make([]dupr.Result, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, playerID := range ids {
		g.Go(func() error {
			res, err := players.GetPlayer(ctx, playerID, callOptions()...)
			if err != nil {
				return fmt.Errorf("player %d: %w", playerID, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(ids)).Msg("Fetched players")
	return results, nil
}

func init() {
	playerSearchCmd.Flags().IntVar(&playerLimit, "limit", dupr.DefaultLimit, "page size")
	playerSearchCmd.Flags().IntVar(&playerOffset, "offset", 0, "page offset")

	playerGetCmd.Flags().BoolVar(&playerHistory, "history", false, "show rating history instead of the profile")
	playerGetCmd.Flags().IntVar(&historyLimit, "limit", 0, "history page size")
	playerGetCmd.Flags().IntVar(&historyOffset, "offset", 0, "history page offset")

	playerCmd.AddCommand(playerSearchCmd, playerGetCmd)
	rootCmd.AddCommand(playerCmd)
}
