package notification

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/samueljsb/gh-notifs/internal/errcodes"
)

// referrerPrefix is the opaque prefix GitHub expects at the start of a
// notification referrer token.
var referrerPrefix = []byte{0x93, 0x00, 0xce, 0x00, 0x73, 0x33, 0xa2, 0xb2}

type EnrichService struct {
	fetcher ContextFetcher
	user    *User
	now     func() time.Time
}

// NewEnrichService returns a service that joins notifications with their
// pull request context. The user may be nil, in which case referrer URLs
// and author highlighting are skipped.
func NewEnrichService(fetcher ContextFetcher, user *User) *EnrichService {
	return &EnrichService{
		fetcher: fetcher,
		user:    user,
		now:     time.Now,
	}
}

func (s *EnrichService) Enrich(n *Entity) (*Enriched, error) {
	ctx, err := s.fetcher.PullRequestContext(n.SubjectURL)
	if err != nil {
		return nil, errors.Wrap(errcodes.ErrEnrichmentUnavailable, err.Error())
	}

	e := &Enriched{
		Notification: n,
		Context:      ctx,
		State:        DeriveDisplayState(ctx),
		Age:          humanize.RelTime(ctx.UpdatedAt, s.now(), "ago", "from now"),
		URL:          ctx.URL,
	}

	if s.user != nil {
		e.URL = referrerURL(ctx.URL, n.ID, s.user.ID)
		e.ViewerIsAuthor = ctx.Author == s.user.Login
	}

	return e, nil
}

// EnrichAll enriches a batch of notifications independently. A failed
// lookup drops that notification with a warning so one bad lookup does not
// hide the rest of the batch.
func (s *EnrichService) EnrichAll(notifs []*Entity) []*Enriched {
	enriched := make([]*Enriched, 0, len(notifs))
	for _, n := range notifs {
		e, err := s.Enrich(n)
		if err != nil {
			log.Warn().
				Str("notification", string(n.ID)).
				Str("repository", n.Repository).
				Err(err).
				Msg("skipping notification")
			continue
		}

		enriched = append(enriched, e)
	}

	return enriched
}

func referrerURL(htmlURL string, id EntityID, userID string) string {
	token := append([]byte{}, referrerPrefix...)
	token = append(token, []byte(fmt.Sprintf("%s:%s", id, userID))...)
	t := strings.TrimRight(base64.StdEncoding.EncodeToString(token), "=")

	return fmt.Sprintf("%s?notification_referrer_id=NT_%s", htmlURL, t)
}
