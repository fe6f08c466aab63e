package render

import (
	"html/template"
	"strings"

	"github.com/samueljsb/gh-notifs/internal/domain/notification"
)

const defaultRefreshSeconds = 12

// HTMLRenderer emits a self-contained page that periodically reloads
// itself, intended to be written to a file and kept open in a browser tab.
type HTMLRenderer struct {
	RefreshSeconds int
}

type htmlPage struct {
	Total         int
	Refresh       int
	RefreshMillis int
	Groups        []*notification.Group
}

func (r *HTMLRenderer) Render(notifs []*notification.Enriched) (string, error) {
	refresh := r.RefreshSeconds
	if refresh <= 0 {
		refresh = defaultRefreshSeconds
	}

	var b strings.Builder
	err := pageTemplate.Execute(&b, &htmlPage{
		Total:         len(notifs),
		Refresh:       refresh,
		RefreshMillis: refresh * 1000,
		Groups:        notification.GroupByRepository(notifs),
	})
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta http-equiv="refresh" content="{{.Refresh}}"/>
<title>Pull request notifications</title>
<style>
  body { background: #161b22; color: #e6edf3; font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; }
  .container { max-width: 56rem; margin: 1rem auto; padding: 0 1rem; }
  .badge { background: #30363d; border-radius: 1rem; padding: 0.2rem 0.7rem; font-size: 0.8rem; }
  h2 { font-size: 1rem; color: #8b949e; border-bottom: 1px solid #30363d; padding-bottom: 0.3rem; }
  ul { list-style: none; padding: 0; margin: 0; }
  .card { background: #21262d; border: 1px solid #30363d; border-radius: 0.4rem; padding: 0.7rem 1rem; margin-bottom: 0.5rem; }
  .card a { color: #e6edf3; font-weight: 600; text-decoration: none; }
  .card a:hover { text-decoration: underline; }
  .state { float: right; border-radius: 1rem; padding: 0.1rem 0.6rem; font-size: 0.75rem; }
  .state.closed, .state.failing { background: #da3633; }
  .state.merged { background: #8957e5; }
  .state.draft { background: #30363d; color: #8b949e; }
  .state.changes_requested { background: #9e6a03; }
  .state.pending { background: #bb8009; }
  .state.approved { background: #238636; }
  .state.review_required { background: #1f6feb; }
  .meta { color: #8b949e; font-size: 0.85rem; margin-top: 0.3rem; }
  .ref { color: #8b949e; font-size: 0.85rem; margin-left: 0.5rem; }
  .add { color: #3fb950; }
  .del { color: #f85149; }
  .empty { color: #8b949e; text-align: center; margin-top: 3rem; }
</style>
</head>
<body>
<div class="container">
<span class="badge">{{.Total}} unread notifications</span>
{{if .Groups}}
{{range .Groups}}
<h2>{{.Repository}}</h2>
<ul>
{{range .Items}}
<li class="card">
  <span class="state {{.State}}">{{.State}}</span>
  <a href="{{.URL}}" target="_blank">{{.Context.Title}}</a>
  <span class="ref">{{.Notification.Repository}}#{{.Context.Number}}</span>
  <div class="meta">
    by {{if .ViewerIsAuthor}}<strong>{{.Context.Author}}</strong>{{else}}{{.Context.Author}}{{end}}
    &middot; {{.Age}}
    &middot; <span class="add">+{{.Context.Additions}}</span> <span class="del">&minus;{{.Context.Deletions}}</span>
    in {{.Context.Commits}} commits, {{.Context.ChangedFiles}} files
    {{if and .Context.BaseRef (ne .Context.BaseRef .Context.BaseDefaultBranch)}}&middot; into {{.Context.BaseRef}}{{end}}
  </div>
</li>
{{end}}
</ul>
{{end}}
{{else}}
<p class="empty">No unread pull request notifications.</p>
{{end}}
</div>
<script>
  setInterval(function () { location.reload(); }, {{.RefreshMillis}});
</script>
</body>
</html>
`))
