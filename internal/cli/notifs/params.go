package notifs

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/samueljsb/gh-notifs/internal/cli/paramutils"
	"github.com/samueljsb/gh-notifs/internal/errcodes"
	"github.com/samueljsb/gh-notifs/internal/gitutils"
	"github.com/samueljsb/gh-notifs/internal/render"
)

type cmdParams struct {
	Mode       render.Mode
	Filepath   string
	Repository string
	Refresh    int
}

var currentRepository = gitutils.CurrentRepository

func fillDefaultParams(params *cmdParams) {
	params.Mode = render.ModeConsole
}

func fillConfigParams(params *cmdParams) {
	if m, err := render.ParseMode(viper.GetString("output.mode")); err == nil {
		params.Mode = m
	}

	if f := viper.GetString("output.filepath"); f != "" {
		params.Filepath = f
	}

	params.Refresh = viper.GetInt("html.refresh_seconds")
}

func fillFlagParams(flags paramutils.FlagRepo, params *cmdParams) error {
	var (
		console = flags.GetBoolOrDefault("console", false)
		html    = flags.GetBoolOrDefault("html", false)
		repo    = flags.GetStringOrDefault("repository", "")
		current = flags.GetBoolOrDefault("current", false)
	)

	if console && html {
		return errcodes.ErrOutputModesExclusive
	}
	if console {
		params.Mode = render.ModeConsole
	}
	if html {
		params.Mode = render.ModeHTML
	}

	params.Filepath = flags.GetStringOrDefault("filepath", params.Filepath)
	params.Refresh = flags.GetIntOrDefault("refresh", params.Refresh)

	if repo != "" && current {
		return errcodes.ErrRepositoryFlagsExclusive
	}
	if current {
		r, err := currentRepository()
		if err != nil {
			return err
		}
		repo = r
	}
	if repo != "" {
		v := strings.Split(repo, "/")
		if len(v) != 2 || v[0] == "" || v[1] == "" {
			return errcodes.ErrRepositoryMustBeInFormOwnerRepo
		}

		params.Repository = repo
	}

	return nil
}
