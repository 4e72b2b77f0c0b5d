package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/anandk/termquest/internal/screen"
)

// PushScreenMsg asks the router to drill into a screen. Screens emit
// it from their Update instead of constructing sub-screens in place,
// so navigation stays a plain message flow.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to back out of the current screen.
type PopScreenMsg struct{}

// Router keeps the navigation stack. The home menu sits at the bottom
// and every drill-down (course, module, lesson, quiz, ...) pushes on
// top of it, so esc always unwinds one level at a time.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with root as its bottom screen.
func New(root screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{root},
	}
}

// Push makes s the active screen and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the active screen. The bottom screen never pops; a
// stray PopScreenMsg on the home menu is ignored rather than leaving
// the app with nothing to draw.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Active returns the screen currently receiving input.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many screens deep the user is. The app model uses
// it to decide between the root and drill-down footer hints.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update intercepts navigation messages and forwards everything else
// to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
