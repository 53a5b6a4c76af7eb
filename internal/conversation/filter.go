package conversation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Filter selects a subset of the conversation list.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterPinned Filter = "pinned"
	FilterUnread Filter = "unread"
)

// Filters lists the filter tabs in display order.
var Filters = []Filter{FilterAll, FilterPinned, FilterUnread}

// ParseFilter accepts the filter names used on the command line.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPinned, FilterUnread:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q (want all, pinned or unread)", s)
	}
}

// Label is the tab caption.
func (f Filter) Label() string {
	switch f {
	case FilterPinned:
		return "Pinned"
	case FilterUnread:
		return "Unread"
	default:
		return "All"
	}
}

// Next cycles to the following tab.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

func (f Filter) match(c Conversation) bool {
	switch f {
	case FilterPinned:
		return c.Pinned
	case FilterUnread:
		return c.Unread > 0
	default:
		return true
	}
}

// Query is the list view's filter state.
type Query struct {
	Search string
	Filter Filter
}

// Matches reports whether a conversation passes the search text. The match
// is a case-insensitive substring test on the title and the last message.
func (q Query) Matches(c Conversation) bool {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Title), needle) ||
		strings.Contains(strings.ToLower(c.LastMessage()), needle)
}

// Apply narrows by search first and then by filter. Order is preserved.
func Apply(items []Conversation, q Query) []Conversation {
	searched := lo.Filter(items, func(c Conversation, _ int) bool {
		return q.Matches(c)
	})
	return lo.Filter(searched, func(c Conversation, _ int) bool {
		return q.Filter.match(c)
	})
}

// Sections is the list split the way the list screen renders it. With the
// "all" filter pinned conversations lead in their own section and Recent
// holds the rest; with any other filter everything lands in Recent.
type Sections struct {
	Pinned []Conversation
	Recent []Conversation
}

// Flatten returns the sections in render order.
func (s Sections) Flatten() []Conversation {
	out := make([]Conversation, 0, len(s.Pinned)+len(s.Recent))
	out = append(out, s.Pinned...)
	return append(out, s.Recent...)
}

// Split applies the query and partitions the result into sections.
func Split(items []Conversation, q Query) Sections {
	results := Apply(items, q)
	if q.Filter != FilterAll && q.Filter != "" {
		return Sections{Recent: results}
	}

	pinned, recent := lo.FilterReject(results, func(c Conversation, _ int) bool {
		return c.Pinned
	})
	return Sections{Pinned: pinned, Recent: recent}
}

// Counts returns the tab badges: the size of each filter over the whole list.
func Counts(items []Conversation) map[Filter]int {
	return map[Filter]int{
		FilterAll:    len(items),
		FilterPinned: lo.CountBy(items, FilterPinned.match),
		FilterUnread: lo.CountBy(items, FilterUnread.match),
	}
}
