package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/anandk/termquest/internal/ui/layout"
)

// Screen is one view on the router's navigation stack (home, course,
// learn, quiz, ...). Screens are small tea models minus the window
// plumbing: the root app model owns the terminal size and the
// header/footer frame, screens only fill the space between.
type Screen interface {
	// Init returns a command to run when the screen is pushed.
	Init() tea.Cmd

	// Update handles a message, returning the screen to keep on the
	// stack and a follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body at the given content size. The frame
	// around it is not this screen's concern.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key bindings in the
// footer. Screens without it get stack-depth defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
