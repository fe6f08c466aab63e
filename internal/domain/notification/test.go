package notification

import "errors"

var ErrMockLookupFailed = errors.New("lookup failed")

type MockSource struct {
	Notifications []*Entity
	ErrorValue    error
}

func (m *MockSource) UnreadPullRequestNotifications(o *ListOptions) ([]*Entity, error) {
	if m.ErrorValue != nil {
		return nil, m.ErrorValue
	}

	return m.Notifications, nil
}

type MockContextFetcher struct {
	Contexts   map[string]*PullRequestContext
	ErrorValue error
}

func (m *MockContextFetcher) PullRequestContext(subjectURL string) (*PullRequestContext, error) {
	if m.ErrorValue != nil {
		return nil, m.ErrorValue
	}

	c, ok := m.Contexts[subjectURL]
	if !ok {
		return nil, ErrMockLookupFailed
	}

	return c, nil
}

type MockUserService struct {
	User       *User
	ErrorValue error
}

func (m *MockUserService) CurrentUser() (*User, error) {
	return m.User, m.ErrorValue
}
