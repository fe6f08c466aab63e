package errcodes

import "errors"

var (
	ErrSourceUnavailable     = errors.New("could not fetch notifications")
	ErrEnrichmentUnavailable = errors.New("could not fetch pull request details")

	ErrMissingGithubToken = errors.New("github token is missing, set github.token or log in with gh")

	ErrRepositoryMustBeInFormOwnerRepo = errors.New("repository must be in the form of 'owner/repo'")
	ErrRepositoryFlagsExclusive        = errors.New("cannot combine --repository and --current")
	ErrOutputModesExclusive            = errors.New("cannot combine --console and --html")
	ErrOutputModeUnknown               = errors.New("output mode is unknown, expected (console, html)")
)
