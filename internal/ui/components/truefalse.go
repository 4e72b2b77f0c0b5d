package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anandk/termquest/internal/ui/theme"
)

// TrueFalse is a two-option true/false selector component.
type TrueFalse struct {
	Prompt      string
	CorrectBool bool
	Selected    bool
	Submitted   bool
	ChosenBool  bool
}

// NewTrueFalse creates a new true/false component. The cursor starts
// on "True".
func NewTrueFalse(prompt string, correct bool) TrueFalse {
	return TrueFalse{
		Prompt:      prompt,
		CorrectBool: correct,
		Selected:    true,
	}
}

// Init returns nil.
func (t TrueFalse) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (t TrueFalse) Update(msg tea.Msg) (TrueFalse, tea.Cmd) {
	if t.Submitted {
		return t, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k", "down", "j", "left", "h", "right", "l", "tab":
		t.Selected = !t.Selected
	case "t":
		t.Selected = true
	case "f":
		t.Selected = false
	case "enter":
		t.Submitted = true
		t.ChosenBool = t.Selected
	}

	return t, nil
}

// View renders the true/false component.
func (t TrueFalse) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(t.Prompt) + "\n\n"

	s += t.renderOption("True", true) + "\n"
	s += t.renderOption("False", false) + "\n"

	return s
}

func (t TrueFalse) renderOption(label string, value bool) string {
	prefix := "  "
	if t.Selected == value && !t.Submitted {
		prefix = "▸ "
	}
	line := prefix + label

	if t.Submitted {
		switch {
		case value == t.CorrectBool:
			return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line)
		case value == t.ChosenBool:
			return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line)
		default:
			return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
		}
	}

	if t.Selected == value {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
}

// IsCorrect returns true if the user chose the correct answer.
func (t TrueFalse) IsCorrect() bool {
	return t.Submitted && t.ChosenBool == t.CorrectBool
}
