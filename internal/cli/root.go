package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	notifscmd "github.com/samueljsb/gh-notifs/internal/cli/notifs"
	"github.com/samueljsb/gh-notifs/internal/cli/utils"
	"github.com/samueljsb/gh-notifs/internal/configutils"
	"github.com/samueljsb/gh-notifs/internal/systemcodes"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "gh-notifs",
	Short:   "List unread pull request notifications",
	Long:    `Fetches your unread GitHub pull request notifications, enriches them with review and CI state, and renders them as a terminal listing or a self-refreshing HTML page.`,
	Version: fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(systemcodes.ErrorCodeConfig)
		}

		err = configutils.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(systemcodes.ErrorCodeConfig)
		}
	},
	Run: utils.RunCommandWrapper(notifscmd.RunCmd),
}

func Execute() {
	rootCmd.Flags().BoolP("console", "c", false, "render a terminal listing (default)")
	rootCmd.Flags().BoolP("html", "H", false, "render a self-refreshing HTML page")
	rootCmd.Flags().StringP("filepath", "f", "", "write the output to a file instead of stdout")
	rootCmd.Flags().StringP("repository", "r", "", "only show notifications for a repository, in form of owner/repo")
	rootCmd.Flags().Bool("current", false, "only show notifications for the repository in the working directory")
	rootCmd.Flags().Int("refresh", 0, "HTML auto-reload interval in seconds")
	rootCmd.PersistentFlags().String("config", "", "config path")

	rootCmd.Execute()
}
