package tui

import tea "github.com/charmbracelet/bubbletea"

// msgSender is the slice of *tea.Program the forwarder needs.
type msgSender interface {
	Send(msg tea.Msg)
}

// AudioEventsForwarder adapts audio backend callbacks into bubbletea
// messages so all session mutation stays on the update loop. The backend
// invokes these from its own goroutine.
type AudioEventsForwarder struct {
	program msgSender
}

// NewAudioEventsForwarder wires backend callbacks to a running program.
func NewAudioEventsForwarder(program msgSender) *AudioEventsForwarder {
	return &AudioEventsForwarder{program: program}
}

// OnTimeUpdate implements domain.AudioEvents.
func (f *AudioEventsForwarder) OnTimeUpdate(t float64) {
	f.program.Send(TimeUpdateMsg{Seconds: t})
}

// OnDurationChange implements domain.AudioEvents.
func (f *AudioEventsForwarder) OnDurationChange(d float64) {
	f.program.Send(DurationChangedMsg{Seconds: d})
}
