package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/misconception"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/store"
)

var misconceptionsCmd = &cobra.Command{
	Use:   "misconceptions",
	Short: "List the misconception catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		withCounts, _ := cmd.Flags().GetBool("counts")

		counts := map[string]int{}
		stale := 0
		if withCounts {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			s, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer s.Close()

			counts, err = s.EventRepo().MisconceptionCounts(context.Background())
			if err != nil {
				return fmt.Errorf("query counts: %w", err)
			}

			versions, err := s.EventRepo().CatalogVersions(context.Background())
			if err != nil {
				return fmt.Errorf("query catalog versions: %w", err)
			}
			for v, n := range versions {
				if misconception.CatalogNewerThan(v) {
					stale += n
				}
			}
		}

		fmt.Println(styleHeading.Render("Misconception catalog " + misconception.CatalogVersion))
		fmt.Println(strings.Repeat("─", 72))

		for _, m := range misconception.All() {
			line := fmt.Sprintf("%-22s  %s", m.ID, m.Name)
			if withCounts {
				line = fmt.Sprintf("%s  %s", line, styleDim.Render(fmt.Sprintf("(seen %d×)", counts[m.ID])))
			}
			fmt.Println(line)
			fmt.Println(styleDim.Render("  " + m.Description))
			fmt.Println(styleDim.Render("  Remediation: " + m.RemediationHint))
			fmt.Println()
		}

		if stale > 0 {
			fmt.Println(styleWarn.Render(fmt.Sprintf(
				"%d event(s) were recorded under an older catalog; their counts may not match current predicates.", stale)))
		}
		return nil
	},
}

func init() {
	misconceptionsCmd.Flags().Bool("counts", false, "Include detection counts from the event store")
}
