package main

import (
	"fmt"
	"strconv"
	"strings"

	"glasschat/cmd/glasschat/ui"
	"glasschat/internal/conversation"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	listFilter string
	listSearch string
)

// listCmd prints the conversation list with the same search and filter
// the interactive list uses.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations",
	Long: `Prints the seeded conversations, pinned first, narrowed by --search
(title or last message) and --filter (all, pinned, unread).`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "Filter: all, pinned or unread")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive search text")
}

func runList(cmd *cobra.Command, _ []string) error {
	filter, err := conversation.ParseFilter(listFilter)
	if err != nil {
		return err
	}
	data, err := loadSeed(appConfig)
	if err != nil {
		return err
	}

	items := conversation.Split(data.Conversations, conversation.Query{Search: listSearch, Filter: filter}).Flatten()
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No conversations match.")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Title", "Flags", "Unread", "Last message", "Time"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, c := range items {
		unread := ""
		if c.Unread > 0 {
			unread = strconv.Itoa(c.Unread)
		}
		table.Append([]string{
			c.ID,
			c.Title,
			flags(c),
			unread,
			ui.Truncate(c.LastMessage(), 40),
			c.Timestamp,
		})
	}
	table.Render()
	return nil
}

func flags(c conversation.Conversation) string {
	var out []string
	if c.Pinned {
		out = append(out, ui.GlyphPinned)
	}
	if c.Muted {
		out = append(out, ui.GlyphMuted)
	}
	if c.Online {
		out = append(out, ui.GlyphOnline)
	}
	return strings.Join(out, " ")
}
