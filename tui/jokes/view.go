package jokes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/jokeboard/tui/common"
	"github.com/CrestNiraj12/jokeboard/tui/joke"
)

const defaultWidth = 80

// View renders the board as a string.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("😂 JokeBoard")
	tagline := common.TaglineStyle.Render("<Vote the best dad jokes to the top>")
	target := m.board.Target()
	badge := common.CountBadgeStyle.Render(fmt.Sprintf("%d %s per run", target, common.Plural(target, "joke", "jokes")))

	b.WriteString(title + tagline + "\n")
	b.WriteString(badge + "\n")

	if m.board.Loading() {
		b.WriteString(m.loadingView())
	} else {
		b.WriteString(common.ButtonStyle.Render("Get New Jokes (r)"))
		b.WriteString("\n\n")
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render("  " + m.help.View(m.keys)))
	return b.String()
}

func (m Model) loadingView() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s Collecting jokes... %d/%d\n",
		m.spinner.View(), m.board.Collected(), m.board.Target()))
	if err := m.board.Err(); err != nil {
		b.WriteString("\n")
		b.WriteString(common.ClampLines(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", err)), width))
		b.WriteString("\n\n  Press r to retry.\n")
	}
	return b.String()
}

func (m Model) listView() string {
	sorted := m.board.Sorted()
	if len(sorted) == 0 {
		return "  No jokes yet. Press r to fetch some.\n"
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	itemWidth := max(width-2, 20)

	rendered := make([]string, len(sorted))
	heights := make([]int, len(sorted))
	for i, j := range sorted {
		rendered[i] = joke.New(j.Text, j.ID, j.Votes, voteCmd).View(i == m.cursor, itemWidth)
		heights[i] = lipgloss.Height(rendered[i])
	}

	start, end := visibleRange(heights, m.cursor, m.listHeight())
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(lipgloss.NewStyle().MarginLeft(1).Render(rendered[i]))
		b.WriteString("\n")
	}
	if end < len(sorted) {
		b.WriteString(common.MetadataStyle.Render(fmt.Sprintf("  ↓ %d more", len(sorted)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// listHeight is the number of lines left for jokes; 0 means unbounded.
func (m Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	// Header (~4), button (~2), status bar (~3).
	const reserved = 9
	return max(m.height-reserved, 1)
}

// visibleRange picks the window of items that fits in avail lines and
// contains cursor. avail 0 shows everything.
func visibleRange(heights []int, cursor, avail int) (int, int) {
	if avail <= 0 || len(heights) == 0 {
		return 0, len(heights)
	}
	cursor = min(max(cursor, 0), len(heights)-1)

	start := 0
	used := 0
	for i := 0; i <= cursor; i++ {
		used += heights[i]
	}
	for used > avail && start < cursor {
		used -= heights[start]
		start++
	}

	end := cursor + 1
	for end < len(heights) && used+heights[end] <= avail {
		used += heights[end]
		end++
	}
	return start, end
}
