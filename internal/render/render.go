package render

import (
	"github.com/samueljsb/gh-notifs/internal/domain/notification"
	"github.com/samueljsb/gh-notifs/internal/errcodes"
)

type Mode string

const (
	ModeConsole Mode = "console"
	ModeHTML    Mode = "html"
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "console", "cli":
		return ModeConsole, nil
	case "html":
		return ModeHTML, nil
	}

	return "", errcodes.ErrOutputModeUnknown
}

// Renderer formats enriched notifications for one output mode. Rendering
// has no side effects; the result goes to a Sink.
type Renderer interface {
	Render(notifs []*notification.Enriched) (string, error)
}

func New(mode Mode, refreshSeconds int) Renderer {
	switch mode {
	case ModeHTML:
		return &HTMLRenderer{RefreshSeconds: refreshSeconds}
	default:
		return &ConsoleRenderer{}
	}
}
