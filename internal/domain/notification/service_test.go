package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/samueljsb/gh-notifs/internal/errcodes"
)

func Test_Enrich(t *testing.T) {
	now := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	ctx := &PullRequestContext{
		Number:    42,
		Title:     "Add things",
		Author:    "octocat",
		URL:       "https://github.com/acme/api/pull/42",
		State:     "open",
		UpdatedAt: now.Add(-3 * time.Hour),
	}

	newService := func(user *User) *EnrichService {
		s := NewEnrichService(&MockContextFetcher{
			Contexts: map[string]*PullRequestContext{
				"https://api.github.com/repos/acme/api/pulls/42": ctx,
			},
		}, user)
		s.now = func() time.Time { return now }

		return s
	}

	raw := &Entity{
		ID:         "123",
		Repository: "acme/api",
		SubjectURL: "https://api.github.com/repos/acme/api/pulls/42",
	}

	t.Run("joins the notification with its context", func(t *testing.T) {
		e, err := newService(nil).Enrich(raw)

		assert.NoError(t, err)
		assert.Equal(t, raw, e.Notification)
		assert.Equal(t, ctx, e.Context)
		assert.Equal(t, StateReviewRequired, e.State)
	})

	t.Run("computes the relative age at enrichment time", func(t *testing.T) {
		e, err := newService(nil).Enrich(raw)

		assert.NoError(t, err)
		assert.Equal(t, "3 hours ago", e.Age)
	})

	t.Run("keeps the plain URL without a user", func(t *testing.T) {
		e, err := newService(nil).Enrich(raw)

		assert.NoError(t, err)
		assert.Equal(t, ctx.URL, e.URL)
	})

	t.Run("tags the URL with a referrer token for the user", func(t *testing.T) {
		e, err := newService(&User{ID: "99", Login: "me"}).Enrich(raw)

		assert.NoError(t, err)
		assert.Contains(t, e.URL, ctx.URL+"?notification_referrer_id=NT_")
	})

	t.Run("flags pull requests authored by the viewer", func(t *testing.T) {
		e, err := newService(&User{ID: "1", Login: "octocat"}).Enrich(raw)

		assert.NoError(t, err)
		assert.True(t, e.ViewerIsAuthor)
	})

	t.Run("wraps lookup failures as enrichment errors", func(t *testing.T) {
		s := NewEnrichService(&MockContextFetcher{
			ErrorValue: errors.New("boom"),
		}, nil)

		_, err := s.Enrich(raw)

		assert.Error(t, err)
		assert.ErrorIs(t, err, errcodes.ErrEnrichmentUnavailable)
	})
}

func Test_EnrichAll(t *testing.T) {
	t.Run("a failed lookup drops only that notification", func(t *testing.T) {
		ctx := &PullRequestContext{State: "open"}
		s := NewEnrichService(&MockContextFetcher{
			Contexts: map[string]*PullRequestContext{
				"url-1": ctx,
				"url-3": ctx,
			},
		}, nil)

		enriched := s.EnrichAll([]*Entity{
			{ID: "1", SubjectURL: "url-1"},
			{ID: "2", SubjectURL: "url-2"},
			{ID: "3", SubjectURL: "url-3"},
		})

		assert.Len(t, enriched, 2)
		assert.Equal(t, EntityID("1"), enriched[0].Notification.ID)
		assert.Equal(t, EntityID("3"), enriched[1].Notification.ID)
	})

	t.Run("empty batch enriches to an empty batch", func(t *testing.T) {
		s := NewEnrichService(&MockContextFetcher{}, nil)
		assert.Empty(t, s.EnrichAll(nil))
	})
}

func Test_referrerURL(t *testing.T) {
	url := referrerURL("https://github.com/acme/api/pull/42", "123", "99")

	prefix := "https://github.com/acme/api/pull/42?notification_referrer_id=NT_"
	assert.True(t, strings.HasPrefix(url, prefix))

	// base64 padding is stripped from the token
	token := strings.TrimPrefix(url, prefix)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=")
}
