package chat

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Search  key.Binding
	Filter  key.Binding
	New     key.Binding
	Pin     key.Binding
	Mute    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Profile key.Binding
	Quit    key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Search, k.Filter, k.New, k.Pin, k.Delete, k.Profile, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Search, k.Filter},
		{k.New, k.Pin, k.Mute, k.Delete, k.Refresh},
		{k.Profile, k.Quit},
	}
}

var listKeys = listKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Filter:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter")),
	New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new chat")),
	Pin:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin")),
	Mute:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Profile: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "profile")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type chatKeyMap struct {
	Send      key.Binding
	Voice     key.Binding
	Attach    key.Binding
	Tools     key.Binding
	Options   key.Binding
	Suggest   key.Binding
	PrevMsg   key.Binding
	NextMsg   key.Binding
	Copy      key.Binding
	Like      key.Binding
	Dislike   key.Binding
	Bookmark  key.Binding
	Back      key.Binding
	ForceQuit key.Binding
}

func (k chatKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Voice, k.Attach, k.Tools, k.Options, k.Copy, k.Back}
}

func (k chatKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Voice, k.Attach, k.Tools, k.Options},
		{k.PrevMsg, k.NextMsg, k.Copy, k.Like, k.Dislike, k.Bookmark},
		{k.Suggest, k.Back, k.ForceQuit},
	}
}

var chatKeys = chatKeyMap{
	Send:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Voice:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "voice")),
	Attach:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "attach")),
	Tools:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "tools")),
	Options:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "options")),
	Suggest:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "suggestion")),
	PrevMsg:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev msg")),
	NextMsg:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next msg")),
	Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	Like:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "like")),
	Dislike:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "dislike")),
	Bookmark:  key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bookmark")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var menuKeys = menuKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

var confirmKeys = struct {
	Yes key.Binding
	No  key.Binding
}{
	Yes: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
	No:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
}
