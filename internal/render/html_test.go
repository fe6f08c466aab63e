package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/samueljsb/gh-notifs/internal/domain/notification"
)

func Test_HTMLRenderer(t *testing.T) {
	now := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	r := &HTMLRenderer{RefreshSeconds: 30}

	t.Run("empty input renders a visible message", func(t *testing.T) {
		out, err := r.Render(nil)

		assert.NoError(t, err)
		assert.Contains(t, out, "<!DOCTYPE html>")
		assert.Contains(t, out, "No unread pull request notifications.")
		assert.Contains(t, out, "0 unread notifications")
	})

	t.Run("renders a card per notification", func(t *testing.T) {
		out, err := r.Render([]*notification.Enriched{
			enrichedFixture("1", "acme/api", "Add things", now),
			enrichedFixture("2", "acme/web", "Fix things", now.Add(-time.Hour)),
		})

		assert.NoError(t, err)
		assert.Contains(t, out, "2 unread notifications")
		assert.Contains(t, out, "Add things")
		assert.Contains(t, out, "Fix things")
		assert.Contains(t, out, `href="https://github.com/acme/api/pull/7"`)
		assert.Less(t, strings.Index(out, "acme/api"), strings.Index(out, "acme/web"))
	})

	t.Run("page reloads itself", func(t *testing.T) {
		out, err := r.Render(nil)

		assert.NoError(t, err)
		assert.Contains(t, out, `<meta http-equiv="refresh" content="30"/>`)
		assert.Contains(t, out, "location.reload()")
		assert.Contains(t, out, "30000")
	})

	t.Run("refresh interval defaults when unset", func(t *testing.T) {
		out, err := (&HTMLRenderer{}).Render(nil)

		assert.NoError(t, err)
		assert.Contains(t, out, `<meta http-equiv="refresh" content="12"/>`)
	})

	t.Run("titles are escaped", func(t *testing.T) {
		out, err := r.Render([]*notification.Enriched{
			enrichedFixture("1", "acme/api", "Use <script> tags", now),
		})

		assert.NoError(t, err)
		assert.NotContains(t, out, "Use <script> tags")
		assert.Contains(t, out, "Use &lt;script&gt; tags")
	})

	t.Run("output is deterministic", func(t *testing.T) {
		notifs := []*notification.Enriched{
			enrichedFixture("1", "acme/api", "Add things", now),
		}

		first, err := r.Render(notifs)
		assert.NoError(t, err)
		second, err := r.Render(notifs)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
