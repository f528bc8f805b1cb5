package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nauta-treinamentos/nauta/internal/ui/theme"
)

// Choice is one selectable answer, identified by the catalog's option id.
type Choice struct {
	ID   string
	Text string
}

// OptionList renders a quiz question's options. While answering, the cursor
// moves and enter picks; in review mode the correct and chosen options are
// highlighted instead.
type OptionList struct {
	Question string
	Choices  []Choice
	Cursor   int

	ChosenID string // selected option id, "" if none yet

	Review          bool
	CorrectID       string
	Explanation     string
	ShowExplanation bool
}

// NewOptionList creates an option list in answering mode.
func NewOptionList(question string, choices []Choice) OptionList {
	return OptionList{
		Question: question,
		Choices:  choices,
	}
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Review {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Choices)-1 {
			o.Cursor++
		}
	case "enter", "space":
		if o.Cursor >= 0 && o.Cursor < len(o.Choices) {
			o.ChosenID = o.Choices[o.Cursor].ID
		}
	}

	return o, nil
}

// View renders the question and its options.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	for i, choice := range o.Choices {
		label := string(rune('A' + i))
		marker := " "
		if choice.ID == o.ChosenID {
			marker = "●"
		}
		prefix := "  "
		if i == o.Cursor && !o.Review {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, choice.Text)

		switch {
		case o.Review && choice.ID == o.CorrectID:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case o.Review && choice.ID == o.ChosenID:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		case o.Review:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	if o.Review && o.ShowExplanation && o.Explanation != "" {
		s += "\n" + theme.Hint.Render("ℹ "+o.Explanation) + "\n"
	}

	return s
}
