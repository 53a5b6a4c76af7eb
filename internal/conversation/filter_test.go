package conversation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFixture() []Conversation {
	return []Conversation{
		{ID: "1", Title: "Open AI GPT-4", Pinned: true, Unread: 2, Messages: []Message{{Text: "Sure! Let me explain how React hooks work..."}}},
		{ID: "2", Title: "Code Assistant", Unread: 1, Messages: []Message{{Text: "The bug is in line 42."}}},
		{ID: "3", Title: "Image Generator", Pinned: true, Messages: []Message{{Text: "Here is your generated image..."}}},
		{ID: "4", Title: "Math Solver", Preview: "The derivative is 2x + 3"},
	}
}

func ids(items []Conversation) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.ID
	}
	return out
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{" Pinned ", FilterPinned, false},
		{"UNREAD", FilterUnread, false},
		{"muted", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Next(t *testing.T) {
	assert.Equal(t, FilterPinned, FilterAll.Next())
	assert.Equal(t, FilterUnread, FilterPinned.Next())
	assert.Equal(t, FilterAll, FilterUnread.Next())
	assert.Equal(t, FilterAll, Filter("bogus").Next())
}

func TestApply(t *testing.T) {
	items := listFixture()

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"all", Query{Filter: FilterAll}, []string{"1", "2", "3", "4"}},
		{"pinned", Query{Filter: FilterPinned}, []string{"1", "3"}},
		{"unread", Query{Filter: FilterUnread}, []string{"1", "2"}},
		{"title search is case-insensitive", Query{Search: "CODE", Filter: FilterAll}, []string{"2"}},
		{"search hits last message", Query{Search: "react", Filter: FilterAll}, []string{"1"}},
		{"search hits preview", Query{Search: "derivative", Filter: FilterAll}, []string{"4"}},
		{"search then filter", Query{Search: "image", Filter: FilterUnread}, []string{}},
		{"blank search matches all", Query{Search: "   ", Filter: FilterPinned}, []string{"1", "3"}},
		{"no match", Query{Search: "zzz", Filter: FilterAll}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(items, tt.q))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_ResultIsOrderedSubset(t *testing.T) {
	items := listFixture()
	queries := []Query{
		{Filter: FilterAll}, {Filter: FilterPinned}, {Filter: FilterUnread},
		{Search: "e", Filter: FilterAll}, {Search: "o", Filter: FilterPinned},
	}

	for _, q := range queries {
		got := Apply(items, q)
		j := 0
		for _, c := range got {
			for j < len(items) && items[j].ID != c.ID {
				j++
			}
			require.Less(t, j, len(items), "result %q out of order for %+v", c.ID, q)
			assert.True(t, q.Matches(c))
			assert.True(t, q.Filter.match(c))
			j++
		}
	}
}

func TestSplit(t *testing.T) {
	items := listFixture()

	s := Split(items, Query{Filter: FilterAll})
	assert.Equal(t, []string{"1", "3"}, ids(s.Pinned))
	assert.Equal(t, []string{"2", "4"}, ids(s.Recent))
	assert.Equal(t, []string{"1", "3", "2", "4"}, ids(s.Flatten()))

	s = Split(items, Query{Filter: FilterUnread})
	assert.Empty(t, s.Pinned)
	assert.Equal(t, []string{"1", "2"}, ids(s.Recent))

	s = Split(items, Query{Search: "solver"})
	assert.Empty(t, s.Pinned)
	assert.Equal(t, []string{"4"}, ids(s.Recent))
}

func TestCounts(t *testing.T) {
	got := Counts(listFixture())
	want := map[Filter]int{FilterAll: 4, FilterPinned: 2, FilterUnread: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Counts() mismatch (-want +got):\n%s", diff)
	}
}
