package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uitable"

	"github.com/samueljsb/gh-notifs/internal/domain/notification"
)

const emptyMessage = "No unread pull request notifications."

var (
	repoStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	authorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	delStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	stateStyles = map[notification.DisplayState]lipgloss.Style{
		notification.StateClosed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		notification.StateMerged:           lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		notification.StateDraft:            lipgloss.NewStyle().Faint(true),
		notification.StateFailing:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		notification.StateChangesRequested: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		notification.StatePending:          lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		notification.StateApproved:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		notification.StateReviewRequired:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
)

// ConsoleRenderer emits one table row per notification, grouped by
// repository with the freshest repositories first.
type ConsoleRenderer struct{}

func (r *ConsoleRenderer) Render(notifs []*notification.Enriched) (string, error) {
	if len(notifs) == 0 {
		return emptyMessage + "\n", nil
	}

	var b strings.Builder
	for gi, g := range notification.GroupByRepository(notifs) {
		if gi > 0 {
			b.WriteString("\n")
		}

		b.WriteString(repoStyle.Render(g.Repository))
		b.WriteString("\n")

		table := uitable.New()
		table.MaxColWidth = 72
		for _, n := range g.Items {
			table.AddRow(
				stateTag(n.State),
				titleStyle.Render(n.Context.Title),
				fmt.Sprintf("#%d", n.Context.Number),
				author(n),
				dimStyle.Render(n.Age),
				diffStat(n.Context),
			)
		}
		b.WriteString(table.String())
		b.WriteString("\n")

		for _, n := range g.Items {
			b.WriteString(dimStyle.Render("  " + n.URL))
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

func stateTag(s notification.DisplayState) string {
	style, ok := stateStyles[s]
	if !ok {
		return string(s)
	}

	return style.Render("[" + string(s) + "]")
}

func author(n *notification.Enriched) string {
	if n.ViewerIsAuthor {
		return authorStyle.Render(n.Context.Author)
	}

	return n.Context.Author
}

func diffStat(c *notification.PullRequestContext) string {
	return fmt.Sprintf(
		"%s %s",
		addStyle.Render(fmt.Sprintf("+%d", c.Additions)),
		delStyle.Render(fmt.Sprintf("-%d", c.Deletions)),
	)
}
