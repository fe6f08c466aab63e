package github

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// githubIterator allows iterating over a paged response of a GitHub API
// call by following the rel="next" target of the Link response header.
type githubIterator[T any] struct {
	Client     *GithubCloudClient
	RequestURL string
	Parse      func(key, value gjson.Result) (T, error)
	hasNext    bool
	nextURL    string
}

// newGithubIteratorOptions is the options for creating a new github iterator
type newGithubIteratorOptions[T any] struct {
	// Client is the github client
	Client *GithubCloudClient
	// RequestURL is the request URL of the first page
	RequestURL string
	// Parse is the function to parse one element of the response;
	// elements it rejects with an error are skipped
	Parse func(key, value gjson.Result) (T, error)
}

// newGithubIterator creates a new github iterator
func newGithubIterator[T any](options *newGithubIteratorOptions[T]) *githubIterator[T] {
	return &githubIterator[T]{
		Client:     options.Client,
		RequestURL: options.RequestURL,
		Parse:      options.Parse,
		hasNext:    true,
		nextURL:    "",
	}
}

func (i *githubIterator[T]) HasNext() bool {
	return i.hasNext
}

// GetAll returns the values from all pages
func (i *githubIterator[T]) GetAll() ([]T, error) {
	result := []T{}
	for i.HasNext() {
		list, err := i.Next()
		if err != nil {
			return nil, err
		}

		result = append(result, list...)
	}

	return result, nil
}

func (i *githubIterator[T]) sendRequest(request *resty.Request) ([]T, error) {
	r, err := request.Send()
	if err != nil {
		return nil, err
	}
	if r.IsError() {
		return nil, errors.New(string(r.Body()))
	}

	i.nextURL = nextPageURL(r.Header().Get("Link"))
	if i.nextURL == "" {
		i.hasNext = false
	}

	return i.parse(gjson.ParseBytes(r.Body())), nil
}

func (i *githubIterator[T]) parse(parsed gjson.Result) []T {
	list := []T{}

	parsed.ForEach(func(key, value gjson.Result) bool {
		obj, err := i.Parse(key, value)
		if err != nil {
			return true
		}

		list = append(list, obj)
		return true
	})

	return list
}

func (i *githubIterator[T]) doInitialCall() ([]T, error) {
	const pageLength = 50

	r := resty.New().R().
		SetAuthToken(i.Client.token).
		SetHeader("Accept", "application/vnd.github+json").
		SetQueryParam("per_page", fmt.Sprint(pageLength)).
		SetError(ghError{})
	r.Method = "GET"
	r.URL = i.RequestURL

	return i.sendRequest(r)
}

func (i *githubIterator[T]) doNextCall() ([]T, error) {
	r := resty.New().R().
		SetAuthToken(i.Client.token).
		SetHeader("Accept", "application/vnd.github+json").
		SetError(ghError{})
	r.Method = "GET"
	r.URL = i.nextURL

	return i.sendRequest(r)
}

func (i *githubIterator[T]) Next() ([]T, error) {
	if !i.hasNext {
		return nil, nil
	}

	if i.nextURL == "" {
		return i.doInitialCall()
	}

	return i.doNextCall()
}

// nextPageURL extracts the rel="next" target from a Link header.
func nextPageURL(link string) string {
	for _, part := range strings.Split(link, ",") {
		fields := strings.Split(part, ";")
		if len(fields) < 2 {
			continue
		}

		url := strings.Trim(strings.TrimSpace(fields[0]), "<>")
		for _, attr := range fields[1:] {
			if strings.TrimSpace(attr) == `rel="next"` {
				return url
			}
		}
	}

	return ""
}
