// Package app owns the loaded catalogs and the single interaction state, and
// notifies listeners when it changes.
package app

import (
	"sync"

	"github.com/sirupsen/logrus"

	"lssgal/internal/catalog"
	"lssgal/internal/view"
)

// State holds the application state: the catalogs, the active mode and the
// current view state with its selection.
type State struct {
	mu     sync.RWMutex // guards listeners
	viewMu sync.RWMutex // guards mode, view and selection

	Catalogs catalog.Set

	mode      view.Mode
	view      view.State
	selection view.Selection

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	// EventSliceChanged fires after center, width or alpha changed and the
	// selection was recomputed. Data is the new view.State.
	EventSliceChanged EventType = iota
	// EventVisibilityChanged fires after a sample was shown or hidden.
	// Data is the sample index.
	EventVisibilityChanged
	// EventModeChanged fires after the slice coordinate changed. Data is the
	// new view.Mode.
	EventModeChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates the application state for the given catalogs, starting
// in mode with its default slice.
func NewState(catalogs catalog.Set, mode view.Mode) *State {
	s := &State{
		Catalogs:  catalogs,
		mode:      mode,
		view:      view.NewState(mode),
		listeners: make(map[EventType][]EventListener),
	}
	s.selection = view.Select(catalogs, mode, s.view)
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Mode returns the active mode.
func (s *State) Mode() view.Mode {
	s.viewMu.RLock()
	defer s.viewMu.RUnlock()
	return s.mode
}

// View returns the current view state.
func (s *State) View() view.State {
	s.viewMu.RLock()
	defer s.viewMu.RUnlock()
	return s.view
}

// Selection returns the current per-sample masks. Masks are replaced, never
// modified, so the result may be read after later changes.
func (s *State) Selection() view.Selection {
	s.viewMu.RLock()
	defer s.viewMu.RUnlock()
	return s.selection
}

// SetCenter moves the slice start.
func (s *State) SetCenter(v float64) {
	s.applySlice(func(st view.State, m view.Mode) view.State { return st.WithCenter(m, v) })
}

// SetWidth changes the slice width.
func (s *State) SetWidth(v float64) {
	s.applySlice(func(st view.State, m view.Mode) view.State { return st.WithWidth(m, v) })
}

// SetAlpha changes the background opacity.
func (s *State) SetAlpha(v float64) {
	s.applySlice(func(st view.State, m view.Mode) view.State { return st.WithAlpha(m, v) })
}

// Reset restores the slider defaults of the active mode. Sample visibility
// is kept.
func (s *State) Reset() {
	logrus.Debug("Resetting sliders")
	s.applySlice(view.State.Reset)
}

// Toggle shows or hides sample i without touching the selection.
func (s *State) Toggle(i int) {
	if i < 0 || i >= catalog.NumSamples {
		logrus.Warnf("Ignoring visibility toggle for unknown sample %d", i)
		return
	}
	s.viewMu.Lock()
	s.view = s.view.Toggle(i)
	visible := s.view.Visible[i]
	s.viewMu.Unlock()

	logrus.Debugf("%s visible: %v", catalog.Labels[i], visible)
	s.Emit(EventVisibilityChanged, i)
}

// SetVisible sets the visibility of sample i, emitting only on change.
func (s *State) SetVisible(i int, visible bool) {
	if i < 0 || i >= catalog.NumSamples || s.View().Visible[i] == visible {
		return
	}
	s.Toggle(i)
}

// SetMode switches the slice coordinate. Sliders go to the new mode's
// defaults; visibility is kept.
func (s *State) SetMode(m view.Mode) {
	s.viewMu.Lock()
	if m.Name == s.mode.Name {
		s.viewMu.Unlock()
		return
	}
	s.mode = m
	s.view = s.view.Reset(m)
	s.selection = view.Select(s.Catalogs, s.mode, s.view)
	s.viewMu.Unlock()

	logrus.Infof("Switching to %s", m.Title)
	s.Emit(EventModeChanged, m)
}

// applySlice installs the state produced by next and recomputes the
// selection. Nothing happens when the state is unchanged, so widgets echoing
// a value back do not trigger a second redraw.
func (s *State) applySlice(next func(view.State, view.Mode) view.State) {
	s.viewMu.Lock()
	st := next(s.view, s.mode)
	if st == s.view {
		s.viewMu.Unlock()
		return
	}
	sliceMoved := !view.SameSlice(st, s.view)
	s.view = st
	s.selection = view.Select(s.Catalogs, s.mode, s.view)
	caption := s.mode.Caption(s.view)
	s.viewMu.Unlock()

	if sliceMoved {
		logrus.Debugf("Slice: %s", caption)
	}
	s.Emit(EventSliceChanged, st)
}
