package gitutils

import (
	"regexp"

	git "github.com/go-git/go-git/v5"
	"github.com/pkg/errors"

	"github.com/samueljsb/gh-notifs/internal/pkg/fs"
)

var (
	ErrCannotGetLocalRepository         = errors.New("cannot get local repository")
	ErrUnableToParseRemoteRepositoryURI = errors.New("unable to parse remote repository URI")
)

var remoteURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^git@[^:]+:([^/]+)/(.+?)(?:\.git)?$`),
	regexp.MustCompile(`^(?:https?|ssh)://[^/]+/([^/]+)/(.+?)(?:\.git)?$`),
}

var getWorkingDir = func(fs fs.Filesystem) (string, error) {
	return fs.Getwd()
}

var openRepo = func(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

// CurrentRepository returns the owner/repo full name of the origin remote
// of the repository containing the working directory.
func CurrentRepository() (string, error) {
	wd, err := getWorkingDir(fs.OS{})
	if err != nil {
		return "", errors.Wrap(ErrCannotGetLocalRepository, err.Error())
	}

	r, err := openRepo(wd)
	if err != nil {
		return "", errors.Wrap(ErrCannotGetLocalRepository, err.Error())
	}

	remote, err := r.Remote("origin")
	if err != nil {
		return "", errors.Wrap(ErrCannotGetLocalRepository, err.Error())
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrUnableToParseRemoteRepositoryURI
	}

	return parseRemoteURL(urls[0])
}

func parseRemoteURL(url string) (string, error) {
	for _, p := range remoteURLPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1] + "/" + m[2], nil
		}
	}

	return "", ErrUnableToParseRemoteRepositoryURI
}
