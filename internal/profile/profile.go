// Package profile holds the local user card, the AI reply modes and the
// settings toggles shown on the profile screen.
package profile

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// User is the static profile card.
type User struct {
	Name          string `yaml:"name"`
	Email         string `yaml:"email"`
	Plan          string `yaml:"plan"`
	JoinDate      string `yaml:"join_date"`
	TotalChats    int    `yaml:"total_chats"`
	TotalMessages int    `yaml:"total_messages"`
	SavedHours    int    `yaml:"saved_hours"`
	StorageUsed   uint64 `yaml:"storage_used"`  // bytes
	StorageTotal  uint64 `yaml:"storage_total"` // bytes
}

// Initials returns up to two upper-case initials for the avatar badge.
func (u User) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(u.Name) {
		b.WriteString(strings.ToUpper(string([]rune(part)[:1])))
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// Stat is one entry of the stats row.
type Stat struct {
	Label string
	Value string
}

// Stats formats the stats row.
func (u User) Stats() []Stat {
	return []Stat{
		{Label: "Chats", Value: humanize.Comma(int64(u.TotalChats))},
		{Label: "Messages", Value: humanize.Comma(int64(u.TotalMessages))},
		{Label: "Saved", Value: fmt.Sprintf("%dh", u.SavedHours)},
	}
}

// StorageFraction is the used share of storage in [0,1].
func (u User) StorageFraction() float64 {
	if u.StorageTotal == 0 {
		return 0
	}
	f := float64(u.StorageUsed) / float64(u.StorageTotal)
	if f > 1 {
		return 1
	}
	return f
}

// StorageLabel renders "2.4 GB of 5.0 GB".
func (u User) StorageLabel() string {
	return fmt.Sprintf("%s of %s", humanize.Bytes(u.StorageUsed), humanize.Bytes(u.StorageTotal))
}

// AIMode tunes the tone of the simulated assistant.
type AIMode string

const (
	ModeCreative AIMode = "creative"
	ModeBalanced AIMode = "balanced"
	ModePrecise  AIMode = "precise"
)

// ModeInfo describes a mode on the picker.
type ModeInfo struct {
	ID    AIMode
	Name  string
	Desc  string
	Color string
}

// Modes lists the picker entries in display order.
func Modes() []ModeInfo {
	return []ModeInfo{
		{ID: ModeCreative, Name: "Creative", Desc: "More imaginative and expressive responses", Color: "#EC4899"},
		{ID: ModeBalanced, Name: "Balanced", Desc: "Best mix of creativity and accuracy", Color: "#A78BFA"},
		{ID: ModePrecise, Name: "Precise", Desc: "More factual and concise responses", Color: "#22C55E"},
	}
}

// Info returns the picker entry for the mode, defaulting to balanced.
func (m AIMode) Info() ModeInfo {
	for _, info := range Modes() {
		if info.ID == m {
			return info
		}
	}
	return Modes()[1]
}

// ParseAIMode validates a mode name.
func ParseAIMode(s string) (AIMode, error) {
	m := AIMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeCreative, ModeBalanced, ModePrecise:
		return m, nil
	}
	return "", fmt.Errorf("unknown ai mode %q", s)
}

// Settings are the toggles on the profile screen. They live for the
// process only.
type Settings struct {
	Mode          AIMode
	DarkMode      bool
	Notifications bool
}
