package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"liga-app/internal/model"
	"liga-app/internal/source"
	"liga-app/internal/standings"
)

func newStandingsCommand() *cobra.Command {
	var dataRoot string
	var payload string
	var division string
	var group string

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print the computed standings of a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDoc(dataRoot, payload)
			if err != nil {
				return err
			}
			result := standings.ComputeSeason(doc)
			for _, div := range result.Divisions {
				if division != "" && div.ID != division {
					continue
				}
				for _, grp := range div.Groups {
					if grp == nil || (group != "" && grp.ID != group) {
						continue
					}
					printGroup(cmd, div, grp)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataRoot, "data", "data", "Root directory of the season tree")
	cmd.Flags().StringVar(&payload, "payload", "", "Compiled JSON payload (overrides --data)")
	cmd.Flags().StringVar(&division, "division", "", "Only this division id")
	cmd.Flags().StringVar(&group, "group", "", "Only this group id")

	return cmd
}

func loadDoc(dataRoot, payload string) (model.SeasonDoc, error) {
	if payload != "" {
		return source.LoadJSON(payload)
	}
	return source.LoadTree(dataRoot)
}

func printGroup(cmd *cobra.Command, division standings.DivisionResult, group *standings.GroupResult) {
	out := cmd.OutOrStdout()
	label := group.Label
	if label == "" {
		label = group.ID
	}
	fmt.Fprintf(out, "%s / %s (%d played, %d scheduled)\n", division.Title, label, group.Played, group.Scheduled)

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTeam\tMP\tW\tL\tSets\tGames\tPts\tRating\tNote")
	for _, team := range group.Standings {
		note := team.TieBreaker
		if team.RequiresDraw {
			note = "draw pending"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d:%d\t%d:%d\t%d\t%d\t%s\n",
			team.Rank, team.Name, team.MatchesPlayed, team.Wins, team.Losses,
			team.SetsWon, team.SetsLost, team.GamesWon, team.GamesLost,
			team.Points, team.Rating, note)
	}
	_ = w.Flush()
	fmt.Fprintln(out, strings.Repeat("-", 40))
}
