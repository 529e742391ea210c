// Package joke renders a single joke and relays vote key presses back to the
// owner of the joke list through a callback.
package joke

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/jokeboard/tui/common"
)

// VoteFunc relays a vote of delta for the joke id to the list owner.
type VoteFunc func(id string, delta int) tea.Cmd

const (
	voteColumnWidth = 5
	minTextWidth    = 10
	frameWidth      = 4 // rounded border + horizontal padding
)

// Item is the per-joke delegate.
type Item struct {
	id    string
	text  string
	votes int
	vote  VoteFunc
	keys  common.KeyMap
}

// New creates a delegate for one joke.
func New(text, id string, votes int, vote VoteFunc) Item {
	return Item{
		id:    id,
		text:  text,
		votes: votes,
		vote:  vote,
		keys:  common.DefaultKeyMap(),
	}
}

// Update turns vote key presses into the callback's command.
func (i Item) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || i.vote == nil {
		return nil
	}
	switch {
	case key.Matches(km, i.keys.Upvote):
		return i.vote(i.id, 1)
	case key.Matches(km, i.keys.Downvote):
		return i.vote(i.id, -1)
	}
	return nil
}

// View renders the joke in a bordered box at most width cells wide.
func (i Item) View(selected bool, width int) string {
	textWidth := max(width-frameWidth-voteColumnWidth-1, minTextWidth)

	score := lipgloss.NewStyle().
		Width(voteColumnWidth).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("▲\n%s\n▼", voteStyle(i.votes).Render(fmt.Sprintf("%d", i.votes))))

	body := common.ContentStyle.Render(common.WrapText(i.text, textWidth))
	content := lipgloss.JoinHorizontal(lipgloss.Top, score, " ", body)

	if selected {
		return common.SelectedStyle.Render(content)
	}
	return common.UnselectedStyle.Render(content)
}

func voteStyle(votes int) lipgloss.Style {
	switch {
	case votes > 0:
		return common.VotesPositiveStyle
	case votes < 0:
		return common.VotesNegativeStyle
	default:
		return common.VotesNeutralStyle
	}
}
