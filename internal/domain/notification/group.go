package notification

import "sort"

// Group is the per-repository section of a rendered listing.
type Group struct {
	Repository string
	Items      []*Enriched
}

// GroupByRepository buckets notifications by repository. Groups are ordered
// by their newest item (most recently updated repository first) and items
// within a group newest first. Equal timestamps fall back to the
// notification ID so the order is stable across runs.
func GroupByRepository(notifs []*Enriched) []*Group {
	byRepo := map[string]*Group{}
	groups := []*Group{}
	for _, n := range notifs {
		g, ok := byRepo[n.Notification.Repository]
		if !ok {
			g = &Group{Repository: n.Notification.Repository}
			byRepo[n.Notification.Repository] = g
			groups = append(groups, g)
		}
		g.Items = append(g.Items, n)
	}

	for _, g := range groups {
		sort.SliceStable(g.Items, func(i, j int) bool {
			return newerThan(g.Items[i], g.Items[j])
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return newerThan(groups[i].Items[0], groups[j].Items[0])
	})

	return groups
}

func newerThan(a, b *Enriched) bool {
	au, bu := a.Context.UpdatedAt, b.Context.UpdatedAt
	if !au.Equal(bu) {
		return au.After(bu)
	}

	return a.Notification.ID < b.Notification.ID
}
