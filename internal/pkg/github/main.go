package github

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"

	"github.com/samueljsb/gh-notifs/internal/domain/notification"
	"github.com/samueljsb/gh-notifs/internal/errcodes"
)

const apiBase = "https://api.github.com"

// GithubCloudClient talks to the GitHub REST API. It implements the
// notification Source, ContextFetcher and UserService interfaces.
type GithubCloudClient struct {
	username string
	token    string
}

type ClientOptions struct {
	Username string
	Token    string
}

func New(o *ClientOptions) *GithubCloudClient {
	return &GithubCloudClient{
		username: o.Username,
		token:    o.Token,
	}
}

var ghAuthToken = func() (string, error) {
	out, err := exec.Command("gh", "auth", "token").Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

// DefaultClient builds a client from the loaded configuration. When no
// token is configured it falls back to the gh CLI's stored credentials so
// an already-authenticated operator needs no config at all.
func DefaultClient() (*GithubCloudClient, error) {
	token := viper.GetString("github.token")
	if token == "" {
		t, err := ghAuthToken()
		if err != nil {
			return nil, errcodes.ErrMissingGithubToken
		}
		log.Debug().Msg("using token from gh auth")
		token = t
	}

	return &GithubCloudClient{
		username: viper.GetString("github.username"),
		token:    token,
	}, nil
}

type ghError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

func (c *GithubCloudClient) get(url string, query map[string]string) (*resty.Response, error) {
	r, err := resty.New().R().
		SetAuthToken(c.token).
		SetHeader("Accept", "application/vnd.github+json").
		SetQueryParams(query).
		SetError(ghError{}).
		Get(url)
	if err != nil {
		return nil, err
	}
	if r.IsError() {
		return nil, errors.New(string(r.Body()))
	}

	return r, nil
}

func (c *GithubCloudClient) UnreadPullRequestNotifications(o *notification.ListOptions) ([]*notification.Entity, error) {
	url := apiBase + "/notifications"
	if o != nil && o.Repository != "" {
		url = fmt.Sprintf("%s/repos/%s/notifications", apiBase, o.Repository)
	}

	it := newGithubIterator(&newGithubIteratorOptions[*notification.Entity]{
		Client:     c,
		RequestURL: url,
		Parse:      parseNotification,
	})

	notifs, err := it.GetAll()
	if err != nil {
		return nil, errors.Wrap(errcodes.ErrSourceUnavailable, err.Error())
	}

	return notifs, nil
}

var errSkipNotification = errors.New("not an unread pull request notification")

// parseNotification rejects anything that is not an unread pull request
// notification; rejected entries are skipped by the iterator.
func parseNotification(key, value gjson.Result) (*notification.Entity, error) {
	if value.Get("subject.type").String() != "PullRequest" {
		return nil, errSkipNotification
	}
	if !value.Get("unread").Bool() {
		return nil, errSkipNotification
	}

	return &notification.Entity{
		ID:         notification.EntityID(value.Get("id").String()),
		Reason:     value.Get("reason").String(),
		Repository: value.Get("repository.full_name").String(),
		Title:      value.Get("subject.title").String(),
		SubjectURL: value.Get("subject.url").String(),
		Unread:     true,
		UpdatedAt:  value.Get("updated_at").Time(),
	}, nil
}

func (c *GithubCloudClient) PullRequestContext(subjectURL string) (*notification.PullRequestContext, error) {
	r, err := c.get(subjectURL, nil)
	if err != nil {
		return nil, err
	}

	pr := gjson.ParseBytes(r.Body())
	ctx := parsePullRequest(pr)

	ctx.ReviewDecision, err = c.reviewDecision(subjectURL, pr)
	if err != nil {
		return nil, err
	}

	ctx.Checks, err = c.checkStatus(
		pr.Get("base.repo.full_name").String(),
		pr.Get("head.sha").String(),
	)
	if err != nil {
		return nil, err
	}

	return ctx, nil
}

func parsePullRequest(pr gjson.Result) *notification.PullRequestContext {
	return &notification.PullRequestContext{
		Number:            pr.Get("number").Int(),
		Title:             pr.Get("title").String(),
		Author:            pr.Get("user.login").String(),
		URL:               pr.Get("html_url").String(),
		State:             pr.Get("state").String(),
		Merged:            pr.Get("merged").Bool(),
		Draft:             pr.Get("draft").Bool(),
		BaseRef:           pr.Get("base.ref").String(),
		BaseDefaultBranch: pr.Get("base.repo.default_branch").String(),
		Commits:           pr.Get("commits").Int(),
		ChangedFiles:      pr.Get("changed_files").Int(),
		Additions:         pr.Get("additions").Int(),
		Deletions:         pr.Get("deletions").Int(),
		UpdatedAt:         pr.Get("updated_at").Time(),
	}
}

func (c *GithubCloudClient) reviewDecision(subjectURL string, pr gjson.Result) (notification.ReviewDecision, error) {
	r, err := c.get(subjectURL+"/reviews", map[string]string{"per_page": "100"})
	if err != nil {
		return "", err
	}

	requested := pr.Get("requested_reviewers.#").Int() + pr.Get("requested_teams.#").Int()

	return parseReviewDecision(gjson.ParseBytes(r.Body()), requested), nil
}

// parseReviewDecision aggregates a reviews listing into a single verdict.
// Only each reviewer's latest non-comment review counts; a request for
// changes from anyone blocks the pull request.
func parseReviewDecision(reviews gjson.Result, requested int64) notification.ReviewDecision {
	latest := map[string]string{}
	reviews.ForEach(func(key, value gjson.Result) bool {
		state := value.Get("state").String()
		if state == "COMMENTED" || state == "PENDING" {
			return true
		}

		latest[value.Get("user.login").String()] = state
		return true
	})

	approved := false
	for _, state := range latest {
		switch state {
		case "CHANGES_REQUESTED":
			return notification.ReviewChangesRequested
		case "APPROVED":
			approved = true
		}
	}

	switch {
	case approved:
		return notification.ReviewApproved
	case requested > 0:
		return notification.ReviewRequired
	default:
		return notification.ReviewNone
	}
}

func (c *GithubCloudClient) checkStatus(repo, sha string) (notification.CheckStatus, error) {
	if repo == "" || sha == "" {
		return notification.ChecksNone, nil
	}

	r, err := c.get(
		fmt.Sprintf("%s/repos/%s/commits/%s/check-runs", apiBase, repo, sha),
		map[string]string{"per_page": "100"},
	)
	if err != nil {
		return "", err
	}

	status := parseCheckStatus(gjson.ParseBytes(r.Body()))
	if status != notification.ChecksNone {
		return status, nil
	}

	// Repositories without check runs may still report legacy commit
	// statuses.
	r, err = c.get(fmt.Sprintf("%s/repos/%s/commits/%s/status", apiBase, repo, sha), nil)
	if err != nil {
		return "", err
	}

	return parseCombinedStatus(gjson.ParseBytes(r.Body())), nil
}

// parseCheckStatus folds a check-runs listing into one aggregate: any
// failure wins, then anything still running, then success.
func parseCheckStatus(checks gjson.Result) notification.CheckStatus {
	if checks.Get("total_count").Int() == 0 {
		return notification.ChecksNone
	}

	status := notification.ChecksSuccess
	checks.Get("check_runs").ForEach(func(key, value gjson.Result) bool {
		if value.Get("status").String() != "completed" {
			if status != notification.ChecksFailure {
				status = notification.ChecksPending
			}
			return true
		}

		switch value.Get("conclusion").String() {
		case "failure", "timed_out", "cancelled", "action_required":
			status = notification.ChecksFailure
			return false
		}

		return true
	})

	return status
}

func parseCombinedStatus(combined gjson.Result) notification.CheckStatus {
	if combined.Get("total_count").Int() == 0 {
		return notification.ChecksNone
	}

	switch combined.Get("state").String() {
	case "success":
		return notification.ChecksSuccess
	case "failure", "error":
		return notification.ChecksFailure
	default:
		return notification.ChecksPending
	}
}

func (c *GithubCloudClient) CurrentUser() (*notification.User, error) {
	r, err := c.get(apiBase+"/user", nil)
	if err != nil {
		return nil, err
	}

	usr := gjson.ParseBytes(r.Body())

	return &notification.User{
		ID:    usr.Get("id").String(),
		Login: usr.Get("login").String(),
	}, nil
}
