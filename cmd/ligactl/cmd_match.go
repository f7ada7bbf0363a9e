package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"liga-app/internal/model"
	"liga-app/internal/source"
)

type matchFlags struct {
	dataRoot string
	division string
	group    string
	match    string
	status   string
	winner   string
	sets     string
	date     string
	round    int
	reason   string
	noBuild  bool
}

func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dataRoot, "data", "data", "Root directory of the season tree")
	cmd.Flags().StringVar(&f.division, "division", "", "Division id (e.g. gold)")
	cmd.Flags().StringVar(&f.group, "group", "", "Group id (e.g. gold-01)")
	cmd.Flags().StringVar(&f.match, "match", "", "Match id")
	cmd.Flags().StringVar(&f.status, "status", "", "Match status (scheduled/played/wo)")
	cmd.Flags().StringVar(&f.winner, "winner", "", "Match winner (home/away)")
	cmd.Flags().StringVar(&f.sets, "sets", "", "Set scores, e.g. 6-4,3-6,7-5")
	cmd.Flags().StringVar(&f.date, "date", "", "Match date (YYYY-MM-DD); empty string clears the field")
	cmd.Flags().IntVar(&f.round, "round", 0, "Round number")
	cmd.Flags().StringVar(&f.reason, "reason", "", "Free-form comment; empty string clears the field")
	cmd.Flags().BoolVar(&f.noBuild, "no-build", false, "Skip recompiling divisions.json afterwards")
	_ = cmd.MarkFlagRequired("division")
	_ = cmd.MarkFlagRequired("group")
}

// groupFile resolves the YAML file for the requested group.
func (f *matchFlags) groupFile() (string, error) {
	divisionDir := filepath.Join(f.dataRoot, "divisions", f.division)
	return source.FindGroupFile(divisionDir, f.group)
}

func (f *matchFlags) rebuild(cmd *cobra.Command) error {
	if f.noBuild {
		return nil
	}
	target := filepath.Join(f.dataRoot, "divisions.json")
	if err := source.Compile(f.dataRoot, target); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "compiled %s\n", target)
	return nil
}

func newSetMatchCommand() *cobra.Command {
	flags := &matchFlags{}
	var newID string
	var clearSets bool

	cmd := &cobra.Command{
		Use:   "set-match",
		Short: "Update an existing match in the season tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.match == "" {
				return fmt.Errorf("--match is required")
			}
			path, err := flags.groupFile()
			if err != nil {
				return err
			}
			group, err := source.LoadGroup(path)
			if err != nil {
				return err
			}

			upd := source.MatchUpdate{
				NewID:     newID,
				Status:    model.MatchStatus(flags.status),
				Winner:    model.Side(flags.winner),
				ClearSets: clearSets,
			}
			if cmd.Flags().Changed("sets") {
				sets, err := source.ParseSets(flags.sets)
				if err != nil {
					return err
				}
				upd.Sets = sets
				upd.SetsGiven = true
			}
			if cmd.Flags().Changed("date") {
				upd.Date = &flags.date
			}
			if cmd.Flags().Changed("round") {
				upd.Round = &flags.round
			}
			if cmd.Flags().Changed("reason") {
				upd.Reason = &flags.reason
			}

			updated, err := source.UpdateMatch(&group, flags.match, upd)
			if err != nil {
				return err
			}
			if err := source.SaveGroup(path, group); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "match %s updated in %s\n", updated.ID, path)
			return flags.rebuild(cmd)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&newID, "new-id", "", "Rename the match to this id")
	cmd.Flags().BoolVar(&clearSets, "clear-sets", false, "Drop the recorded set scores")

	return cmd
}

func newAddMatchCommand() *cobra.Command {
	flags := &matchFlags{}
	var home, away string

	cmd := &cobra.Command{
		Use:   "add-match",
		Short: "Add a new match to a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := flags.groupFile()
			if err != nil {
				return err
			}
			group, err := source.LoadGroup(path)
			if err != nil {
				return err
			}

			match := model.MatchRecord{
				ID:   flags.match,
				Home: home,
				Away: away,
				Date: flags.date,
				Result: &model.MatchResult{
					Status: model.MatchScheduled,
					Winner: model.Side(flags.winner),
					Reason: flags.reason,
				},
			}
			if match.ID == "" {
				match.ID = source.NextMatchID(&group)
			}
			if flags.status != "" {
				match.Result.Status = model.MatchStatus(flags.status)
			}
			if cmd.Flags().Changed("round") {
				match.Round = model.NumericRound(flags.round)
			}
			if flags.sets != "" {
				sets, err := source.ParseSets(flags.sets)
				if err != nil {
					return err
				}
				match.Result.Sets = sets
			}

			if err := source.AddMatch(&group, match); err != nil {
				return err
			}
			if err := source.SaveGroup(path, group); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "match %s added to %s\n", match.ID, path)
			return flags.rebuild(cmd)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&home, "home", "", "Home team id")
	cmd.Flags().StringVar(&away, "away", "", "Away team id")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")

	return cmd
}
