package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studydash/client"
)

const Version = "0.1.0"

var serverURL string

var rootCmd = &cobra.Command{
	Use:           "studydash",
	Short:         "StudyDash — study tracker with a voice-enabled assistant",
	Long:          "StudyDash tracks chapters, focus, discipline and XP, and talks to the StudyDash assistant backend.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	defaultServer := os.Getenv("STUDYDASH_SERVER")
	if defaultServer == "" {
		defaultServer = client.DefaultServer
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "backend base URL")

	rootCmd.AddCommand(
		newChatCmd(),
		newListenCmd(),
		newStatusCmd(),
		newDoneCmd(),
		newBoostCmd(),
		newSetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, badStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

func gateway() *client.Gateway {
	return client.NewGateway(serverURL)
}
