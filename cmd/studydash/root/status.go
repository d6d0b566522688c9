package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show study progress, level and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := gateway().GetProgress(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			name := view.Name
			if name == "" {
				name = "Student"
			}
			fmt.Fprintln(out, headingStyle.Render("📚 "+name)+" "+mutedStyle.Render(view.ClassName))
			fmt.Fprintln(out, keyStyle.Render("Level:")+fmt.Sprintf(" %d", view.Level))
			fmt.Fprintln(out, keyStyle.Render("Chapters:")+fmt.Sprintf(" %d/%d (%d left)",
				view.DoneChapters, view.TotalChapters, view.ChaptersLeft))
			fmt.Fprintln(out, keyStyle.Render("Focus:")+fmt.Sprintf(" %d", view.Focus)+
				"  "+keyStyle.Render("Discipline:")+fmt.Sprintf(" %d", view.Discipline))
			fmt.Fprintln(out, keyStyle.Render("XP:")+fmt.Sprintf(" %d", view.XP))

			var week []string
			for i, xp := range view.WeeklyXP {
				week = append(week, fmt.Sprintf("%s %d", weekdayLabels[i], xp))
			}
			fmt.Fprintln(out, mutedStyle.Render(strings.Join(week, " · ")))

			fmt.Fprintln(out, "")
			if len(view.Badges) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No badges yet — start studying!"))
				return nil
			}
			var chips []string
			for _, b := range view.Badges {
				chips = append(chips, badgeChip(b.Name, b.Color))
			}
			fmt.Fprintln(out, strings.Join(chips, " "))
			return nil
		},
	}
}
