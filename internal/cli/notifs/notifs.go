package notifs

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/samueljsb/gh-notifs/internal/cli/paramutils"
	"github.com/samueljsb/gh-notifs/internal/domain/notification"
	"github.com/samueljsb/gh-notifs/internal/pkg/github"
	"github.com/samueljsb/gh-notifs/internal/render"
)

// RunCmd wires the pipeline: fetch unread notifications, enrich each one
// with its pull request context, render once, write to the sink.
func RunCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}

	params := &cmdParams{}
	fillDefaultParams(params)
	fillConfigParams(params)
	if err := fillFlagParams(flags, params); err != nil {
		return err
	}

	c, err := github.DefaultClient()
	if err != nil {
		return err
	}

	sink := render.NewSink(params.Filepath, os.Stdout)

	return execute(c, c, c, params, sink)
}

func execute(
	source notification.Source,
	fetcher notification.ContextFetcher,
	users notification.UserService,
	params *cmdParams,
	sink render.Sink,
) error {
	notifs, err := source.UnreadPullRequestNotifications(&notification.ListOptions{
		Repository: params.Repository,
	})
	if err != nil {
		return err
	}

	user, err := users.CurrentUser()
	if err != nil {
		// Referrer URLs and author highlighting degrade gracefully.
		log.Warn().Err(err).Msg("could not resolve the current user")
		user = nil
	}

	enriched := notification.NewEnrichService(fetcher, user).EnrichAll(notifs)

	out, err := render.New(params.Mode, params.Refresh).Render(enriched)
	if err != nil {
		return err
	}

	return sink.Write(out)
}
