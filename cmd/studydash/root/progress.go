package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studydash/backend/models"
)

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Mark a chapter as finished",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := gateway().ChapterDone(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d done, %d left, level %d\n",
				goodStyle.Render("✓ Chapter added:"), view.DoneChapters, view.ChaptersLeft, view.Level)
			return nil
		},
	}
}

func newBoostCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "boost <focus|discipline>",
		Short:     "Boost focus or discipline",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"focus", "discipline"},
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := gateway().Boost(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s focus %d, discipline %d\n",
				goodStyle.Render("✓ Boosted:"), view.Focus, view.Discipline)
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	var name, className string
	var total, done int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			var update models.UpdateProfileRequest
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("class") {
				update.ClassName = &className
			}
			if cmd.Flags().Changed("total") {
				update.TotalChapters = &total
			}
			if cmd.Flags().Changed("done") {
				update.DoneChapters = &done
			}

			view, err := gateway().UpdateProfile(context.Background(), update)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s, %s, %d/%d chapters\n",
				goodStyle.Render("✓ Saved:"), view.Name, view.ClassName, view.DoneChapters, view.TotalChapters)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&className, "class", "", "class description")
	cmd.Flags().IntVar(&total, "total", 0, "total chapters")
	cmd.Flags().IntVar(&done, "done", 0, "chapters done")
	return cmd
}
