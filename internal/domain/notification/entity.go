package notification

import "time"

type EntityID string

// Entity is a single unread notification whose subject is a pull request,
// as returned by the platform. It is re-fetched on every run.
type Entity struct {
	ID         EntityID
	Reason     string
	Repository string // full name, owner/repo
	Title      string
	SubjectURL string // API URL of the pull request resource
	Unread     bool
	UpdatedAt  time.Time
}

type ReviewDecision string

const (
	ReviewApproved         ReviewDecision = "approved"
	ReviewChangesRequested ReviewDecision = "changes_requested"
	ReviewRequired         ReviewDecision = "review_required"
	ReviewNone             ReviewDecision = "none"
)

type CheckStatus string

const (
	ChecksSuccess CheckStatus = "success"
	ChecksFailure CheckStatus = "failure"
	ChecksPending CheckStatus = "pending"
	ChecksNone    CheckStatus = "none"
)

// PullRequestContext is the pull request metadata behind a notification,
// collected from the secondary lookups.
type PullRequestContext struct {
	Number int64
	Title  string
	Author string
	URL    string

	State  string // open or closed
	Merged bool
	Draft  bool

	ReviewDecision ReviewDecision
	Checks         CheckStatus

	BaseRef           string
	BaseDefaultBranch string

	Commits      int64
	ChangedFiles int64
	Additions    int64
	Deletions    int64

	UpdatedAt time.Time
}

// Closed reports whether the pull request was closed without merging.
func (c *PullRequestContext) Closed() bool {
	return c.State == "closed" && !c.Merged
}

type DisplayState string

const (
	StateClosed           DisplayState = "closed"
	StateMerged           DisplayState = "merged"
	StateDraft            DisplayState = "draft"
	StateFailing          DisplayState = "failing"
	StateChangesRequested DisplayState = "changes_requested"
	StatePending          DisplayState = "pending"
	StateApproved         DisplayState = "approved"
	StateReviewRequired   DisplayState = "review_required"
)

// DeriveDisplayState collapses the context's independent signals into the
// single tag that drives presentation. Terminal states dominate; among open
// pull requests a broken build or a blocking review outranks a pending
// check, which outranks "ready to review".
func DeriveDisplayState(c *PullRequestContext) DisplayState {
	switch {
	case c.Closed():
		return StateClosed
	case c.Merged:
		return StateMerged
	case c.Draft:
		return StateDraft
	case c.Checks == ChecksFailure:
		return StateFailing
	case c.ReviewDecision == ReviewChangesRequested:
		return StateChangesRequested
	case c.Checks == ChecksPending:
		return StatePending
	case c.ReviewDecision == ReviewApproved:
		return StateApproved
	default:
		return StateReviewRequired
	}
}

// Enriched joins a notification with its pull request context. This is the
// only entity the renderers see.
type Enriched struct {
	Notification *Entity
	Context      *PullRequestContext
	State        DisplayState

	// Age is the relative time since the pull request was updated,
	// fixed at enrichment time so that rendering stays deterministic.
	Age string

	// URL carries the notification referrer token so that following the
	// link also clears the web notification.
	URL string

	ViewerIsAuthor bool
}
