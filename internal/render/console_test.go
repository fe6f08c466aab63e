package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/samueljsb/gh-notifs/internal/domain/notification"
)

func enrichedFixture(id notification.EntityID, repo, title string, updated time.Time) *notification.Enriched {
	ctx := &notification.PullRequestContext{
		Number:    7,
		Title:     title,
		Author:    "octocat",
		URL:       "https://github.com/" + repo + "/pull/7",
		State:     "open",
		Checks:    notification.ChecksSuccess,
		Additions: 10,
		Deletions: 2,
		UpdatedAt: updated,
	}

	return &notification.Enriched{
		Notification: &notification.Entity{ID: id, Repository: repo, Title: title},
		Context:      ctx,
		State:        notification.DeriveDisplayState(ctx),
		Age:          "2 hours ago",
		URL:          ctx.URL,
	}
}

func Test_ConsoleRenderer(t *testing.T) {
	now := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	r := &ConsoleRenderer{}

	t.Run("empty input renders a message", func(t *testing.T) {
		out, err := r.Render(nil)

		assert.NoError(t, err)
		assert.Contains(t, out, "No unread pull request notifications.")
	})

	t.Run("renders one row per notification", func(t *testing.T) {
		out, err := r.Render([]*notification.Enriched{
			enrichedFixture("1", "acme/api", "Add things", now),
			enrichedFixture("2", "acme/api", "Fix things", now.Add(-time.Hour)),
		})

		assert.NoError(t, err)
		assert.Contains(t, out, "acme/api")
		assert.Contains(t, out, "Add things")
		assert.Contains(t, out, "Fix things")
		assert.Contains(t, out, "2 hours ago")
		assert.Contains(t, out, "+10")
		assert.Contains(t, out, "-2")
	})

	t.Run("fresher repositories come first", func(t *testing.T) {
		out, err := r.Render([]*notification.Enriched{
			enrichedFixture("1", "acme/old", "Old change", now.Add(-24*time.Hour)),
			enrichedFixture("2", "acme/fresh", "Fresh change", now),
		})

		assert.NoError(t, err)
		assert.Less(t, strings.Index(out, "acme/fresh"), strings.Index(out, "acme/old"))
	})

	t.Run("items within a group are newest first", func(t *testing.T) {
		out, err := r.Render([]*notification.Enriched{
			enrichedFixture("1", "acme/api", "Older change", now.Add(-time.Hour)),
			enrichedFixture("2", "acme/api", "Newer change", now),
		})

		assert.NoError(t, err)
		assert.Less(t, strings.Index(out, "Newer change"), strings.Index(out, "Older change"))
	})

	t.Run("output is deterministic", func(t *testing.T) {
		notifs := []*notification.Enriched{
			enrichedFixture("1", "acme/api", "Add things", now),
			enrichedFixture("2", "acme/web", "Fix things", now.Add(-time.Hour)),
		}

		first, err := r.Render(notifs)
		assert.NoError(t, err)
		second, err := r.Render(notifs)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
