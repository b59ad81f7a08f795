package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/llm"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/misconception"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show evaluation and reward statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		stats, err := repo.EvaluationStats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.Total == 0 {
			fmt.Println("No evaluations recorded yet.")
			return nil
		}

		answered := stats.Total - stats.Skipped
		accuracy := 0.0
		if answered > 0 {
			accuracy = float64(stats.Correct) / float64(answered) * 100
		}

		fmt.Println(styleHeading.Render("Evaluations"))
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("  Total      %6d\n", stats.Total)
		fmt.Printf("  Correct    %6d  %s\n", stats.Correct,
			styleDim.Render(fmt.Sprintf("(%.1f%% of answered)", accuracy)))
		fmt.Printf("  Skipped    %6d\n", stats.Skipped)

		types := make([]string, 0, len(stats.ByQuestionType))
		for qt := range stats.ByQuestionType {
			types = append(types, qt)
		}
		sort.Strings(types)
		for _, qt := range types {
			fmt.Printf("  %-14s %4d\n", qt, stats.ByQuestionType[qt])
		}

		fmt.Println()
		fmt.Println(styleHeading.Render("Rewards"))
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("  XP awarded    %8d\n", stats.XPTotal)
		fmt.Printf("  Coins awarded %8d\n", stats.CoinTotal)

		usage, err := repo.LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query LLM usage: %w", err)
		}
		if len(usage) > 0 {
			fmt.Println()
			fmt.Println(styleHeading.Render("LLM spend"))
			fmt.Println(strings.Repeat("─", 48))
			var total float64
			partial := false
			for _, mu := range usage {
				cost := llm.PriceFor(mu.Model)
				if cost == nil {
					partial = true
					fmt.Printf("  %-28s %5d calls  %9s\n", truncate(mu.Model, 28), mu.Calls, "?")
					continue
				}
				c := cost.Cost(mu.InputTokens, mu.OutputTokens)
				total += c
				fmt.Printf("  %-28s %5d calls  %9s\n", truncate(mu.Model, 28), mu.Calls, formatCost(c))
			}
			label := "total"
			if partial {
				label = "total (partial)"
			}
			fmt.Printf("  %-28s %12s %9s\n", label, "", formatCost(total))
		}

		counts, err := repo.MisconceptionCounts(ctx)
		if err != nil {
			return fmt.Errorf("query misconception counts: %w", err)
		}
		if len(counts) > 0 {
			fmt.Println()
			fmt.Println(styleHeading.Render("Misconceptions"))
			fmt.Println(strings.Repeat("─", 48))
			for _, m := range misconception.All() {
				if n := counts[m.ID]; n > 0 {
					fmt.Printf("  %-22s %4d\n", m.ID, n)
				}
			}
		}

		return nil
	},
}
