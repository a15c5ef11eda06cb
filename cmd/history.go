package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/leaderboard"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			printLeaderboard(cmd.OutOrStdout(), leaderboard.Aggregate(rt.history.List()))
			return nil
		},
	}
}

func printLeaderboard(w io.Writer, groups []leaderboard.Group) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		return
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, theme.Title.Render(g.Key)+"  "+theme.Dim.Render(g.Config.Label()))

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
			Headers("#", "Score", "Accuracy", "Played")
		for rank, rec := range g.Entries {
			t.Row(
				strconv.Itoa(rank+1),
				strconv.Itoa(rec.Score),
				strconv.Itoa(rec.Accuracy)+"%",
				rec.Timestamp.Local().Format("2006-01-02 15:04"),
			)
		}
		fmt.Fprintln(w, t.Render())
	}
}
