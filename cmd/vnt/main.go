package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	cl "venture/internal/cli"
	"venture/internal/config"
	"venture/internal/game"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.LoadCLIFromEnv()
	apiBase := cfg.APIBaseURL

	root := &cobra.Command{
		Use:          "vnt",
		Short:        "Venture CLI game client",
		SilenceUsage: true,
	}

	root.AddCommand(
		newStartCmd(&apiBase),
		newEndCmd(&apiBase),
		newResetCmd(&apiBase),
		newDashCmd(&apiBase),
		newStartupsCmd(&apiBase),
		newInvestCmd(&apiBase),
		newSellCmd(&apiBase),
		newNewsCmd(&apiBase),
		newNotificationsCmd(&apiBase),
		newLeaderboardCmd(&apiBase),
		newAchievementsCmd(&apiBase),
		newProfileCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(apiBase *string) (*cl.Client, error) {
	profile, err := cl.LoadProfile()
	if err != nil {
		return nil, err
	}
	return cl.NewClient(strings.TrimRight(strings.TrimSpace(*apiBase), "/"), profile.PlayerID), nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}

func newStartCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new investment round",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			out, err := client.StartRound(ctx)
			if err != nil {
				return err
			}
			return renderSession(out)
		},
	}
}

func newEndCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current round and settle",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			out, err := client.EndRound(ctx)
			if err != nil {
				return err
			}
			return renderSettlement(out)
		},
	}
}

func newResetCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the round and return to the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			if _, err := client.ResetRound(ctx); err != nil {
				return err
			}
			printSuccess("Back to the menu. Starting cash restored.")
			return nil
		},
	}
}

func newDashCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Show your dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			out, err := client.State(ctx)
			if err != nil {
				return err
			}
			return renderDash(out)
		},
	}
}

func newStartupsCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "startups [id]",
		Short: "List startup deals or inspect one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			if len(args) == 1 {
				out, err := client.StartupDetail(ctx, args[0])
				if err != nil {
					return err
				}
				return renderStartupDetail(out)
			}
			out, err := client.ListStartups(ctx)
			if err != nil {
				return err
			}
			return renderStartups(out)
		},
	}
}

func newInvestCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "invest [startup-id]",
		Short: "Buy shares in a startup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			startupID := ""
			if len(args) == 1 {
				startupID = args[0]
			} else {
				startupID, err = promptRequired("Startup ID")
				if err != nil {
					return err
				}
			}

			detail, err := client.StartupDetail(ctx, startupID)
			if err != nil {
				return err
			}
			view, err := decodeInto[game.StartupView](detail)
			if err != nil {
				return err
			}
			if view.Locked {
				printWarn(fmt.Sprintf("%s needs %d reputation.", view.Name, view.ReputationRequired))
				return nil
			}
			fmt.Printf("%s: $%s per share, %s shares available\n",
				view.Name, formatMicros(view.PricePerShareMicros), comma(view.AvailableShares))

			shares, err := promptInt64("Shares", 1)
			if err != nil {
				return err
			}
			amountMicros := shares * view.PricePerShareMicros
			fmt.Printf("Total: $%s\n", formatMicros(amountMicros))

			out, err := client.Invest(ctx, startupID, shares, amountMicros)
			if err != nil {
				return err
			}
			inv, err := decodeInto[game.Investment](out)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Bought %d shares of %s for $%s (investment %s).",
				shares, view.Name, formatMicros(amountMicros), inv.ID))
			return nil
		},
	}
}

func newSellCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sell [investment-id]",
		Short: "Exit an active investment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			investmentID := ""
			if len(args) == 1 {
				investmentID = args[0]
			} else {
				list, err := client.ListInvestments(ctx)
				if err != nil {
					return err
				}
				if err := renderInvestments(list); err != nil {
					return err
				}
				investmentID, err = promptRequired("Investment ID")
				if err != nil {
					return err
				}
			}

			out, err := client.Sell(ctx, investmentID)
			if err != nil {
				return err
			}
			inv, err := decodeInto[game.Investment](out)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Exited %s for $%s.", inv.StartupID, formatMicros(inv.CurrentValueMicros)))
			return nil
		},
	}
}

func newNewsCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "news",
		Short: "Show this round's released market events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			out, err := client.ListEvents(ctx)
			if err != nil {
				return err
			}
			return renderEvents(out)
		},
	}
}

func newNotificationsCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notes"},
		Short:   "Show recent notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			out, err := client.ListNotifications(ctx)
			if err != nil {
				return err
			}
			return renderNotifications(out)
		},
	}
}

func newLeaderboardCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"board"},
		Short:   "Show the reputation leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			out, err := client.Leaderboard(ctx)
			if err != nil {
				return err
			}
			return renderLeaderboard(out)
		},
	}
}

func newAchievementsCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievement progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(apiBase)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			out, err := client.Achievements(ctx)
			if err != nil {
				return err
			}
			return renderAchievements(out)
		},
	}
}

func newProfileCmd() *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Manage the local player profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cl.LoadProfile()
			if err != nil {
				return err
			}
			fmt.Printf("Player ID: %s\nUsername:  %s\n", p.PlayerID, p.Username)
			return nil
		},
	}
	profile.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the local profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cl.ClearProfile(); err != nil {
				return err
			}
			printSuccess("Profile cleared. A fresh one is minted on next use.")
			return nil
		},
	})
	return profile
}
