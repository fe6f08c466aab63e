package notification

// User is the authenticated account the notifications belong to.
type User struct {
	ID    string
	Login string
}

type ListOptions struct {
	// Repository restricts the listing to a single owner/repo when set.
	Repository string
}

// Source lists the user's unread pull request notifications. Read-only;
// ordering is whatever the platform returns.
type Source interface {
	UnreadPullRequestNotifications(o *ListOptions) ([]*Entity, error)
}

// ContextFetcher retrieves the pull request metadata behind a notification.
type ContextFetcher interface {
	PullRequestContext(subjectURL string) (*PullRequestContext, error)
}

// UserService identifies the authenticated user.
type UserService interface {
	CurrentUser() (*User, error)
}
