package playback

import (
	"log/slog"
	"time"

	"github.com/castwave/castwave/internal/domain"
)

// progressWriteInterval throttles per-episode progress persistence. The
// backend reports time on every tick; writing each tick through to disk
// would be pure churn, so writes coalesce to at most one per interval.
const progressWriteInterval = time.Second

// Session is the single global "now playing" state machine. It is driven
// by the UI on one side and by AudioBackend callbacks on the other, and it
// mirrors its state into persistence so a restart can resume mid-episode.
//
// States: Idle (nothing loaded), Paused, Playing. Play and Pause are
// no-ops in Idle.
type Session struct {
	backend     domain.AudioBackend
	persistence domain.Store
	logger      *slog.Logger
	now         func() time.Time

	state             domain.SessionState
	current           domain.PlaybackState
	lastProgressWrite time.Time
}

// NewSession creates an idle playback session.
func NewSession(backend domain.AudioBackend, persistence domain.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		backend:     backend,
		persistence: persistence,
		logger:      logger,
		now:         time.Now,
		state:       domain.SessionIdle,
	}
}

// State returns the machine's current state.
func (s *Session) State() domain.SessionState {
	return s.state
}

// Snapshot returns a copy of the live playback state.
func (s *Session) Snapshot() domain.PlaybackState {
	return s.current
}

// LoadEpisode loads an episode into the session from any state, landing in
// Paused. The position is seeded from the persisted per-episode progress
// (0 when never played) and the duration cleared until the backend reports
// metadata. Progress of the previously loaded episode is flushed first.
func (s *Session) LoadEpisode(ref domain.EpisodeRef, title, audioURL string) error {
	if s.state != domain.SessionIdle {
		s.flushProgress()
	}

	resume := s.persistence.GetProgress(ref)

	s.current = domain.PlaybackState{
		CurrentEpisode: ref,
		EpisodeTitle:   title,
		AudioURL:       audioURL,
		IsPlaying:      false,
		CurrentTime:    resume,
		Duration:       0,
	}
	s.state = domain.SessionPaused
	s.persistSession()

	if err := s.backend.Load(audioURL); err != nil {
		return err
	}
	if resume > 0 {
		if err := s.backend.Seek(resume); err != nil {
			s.logger.Warn("failed to seek to saved position", "ref", ref.String(), "error", err)
		}
	}

	s.logger.Info("episode loaded", "ref", ref.String(), "resumeAt", resume)
	return nil
}

// Play transitions Paused -> Playing. No-op when Idle.
func (s *Session) Play() error {
	if s.state != domain.SessionPaused {
		return nil
	}
	if err := s.backend.Play(); err != nil {
		return err
	}
	s.state = domain.SessionPlaying
	s.current.IsPlaying = true
	s.persistSession()
	return nil
}

// Pause transitions Playing -> Paused and flushes progress. No-op when Idle.
func (s *Session) Pause() error {
	if s.state != domain.SessionPlaying {
		return nil
	}
	if err := s.backend.Pause(); err != nil {
		return err
	}
	s.state = domain.SessionPaused
	s.current.IsPlaying = false
	s.persistSession()
	s.flushProgress()
	return nil
}

// TogglePlay flips between Playing and Paused. No-op when Idle.
func (s *Session) TogglePlay() error {
	switch s.state {
	case domain.SessionPlaying:
		return s.Pause()
	case domain.SessionPaused:
		return s.Play()
	default:
		return nil
	}
}

// Seek clamps t to [0, duration] (when the duration is known), moves the
// backend position, and records the new progress immediately. No-op when Idle.
func (s *Session) Seek(t float64) error {
	if s.state == domain.SessionIdle {
		return nil
	}
	t = s.clamp(t)
	if err := s.backend.Seek(t); err != nil {
		return err
	}
	s.current.CurrentTime = t
	s.flushProgress()
	return nil
}

// OnTimeUpdate receives position callbacks from the backend. Progress is
// persisted per episode, throttled to one write per interval.
func (s *Session) OnTimeUpdate(t float64) {
	if s.state == domain.SessionIdle {
		return
	}
	s.current.CurrentTime = s.clamp(t)

	if s.now().Sub(s.lastProgressWrite) >= progressWriteInterval {
		s.flushProgress()
	}
}

// OnDurationChange receives the stream duration once metadata is available.
func (s *Session) OnDurationChange(d float64) {
	if s.state == domain.SessionIdle || d < 0 {
		return
	}
	s.current.Duration = d
	s.current.CurrentTime = s.clamp(s.current.CurrentTime)
	s.persistSession()
}

// Restore rehydrates a persisted session into Paused. Playback never
// auto-resumes on restart: the persisted isPlaying flag is deliberately
// ignored and a key press is required to resume. Returns false when no
// session was persisted.
func (s *Session) Restore() bool {
	saved, ok := s.persistence.GetPlaybackState()
	if !ok {
		return false
	}

	resume := s.persistence.GetProgress(saved.CurrentEpisode)

	s.current = saved
	s.current.IsPlaying = false
	s.current.CurrentTime = resume
	s.state = domain.SessionPaused
	s.persistSession()

	if err := s.backend.Load(saved.AudioURL); err != nil {
		s.logger.Warn("failed to reload persisted episode", "error", err)
	} else if resume > 0 {
		if err := s.backend.Seek(resume); err != nil {
			s.logger.Warn("failed to seek restored session", "error", err)
		}
	}

	s.logger.Info("session restored", "ref", saved.CurrentEpisode.String(), "at", resume)
	return true
}

// Shutdown flushes progress and stops the backend.
func (s *Session) Shutdown() {
	if s.state == domain.SessionIdle {
		return
	}
	if s.state == domain.SessionPlaying {
		s.state = domain.SessionPaused
		s.current.IsPlaying = false
		s.persistSession()
	}
	s.flushProgress()
	if err := s.backend.Stop(); err != nil {
		s.logger.Warn("failed to stop audio backend", "error", err)
	}
}

func (s *Session) clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if s.current.Duration > 0 && t > s.current.Duration {
		return s.current.Duration
	}
	return t
}

// persistSession writes the session-level keys. Called on every change to
// the current episode, play flag, or duration.
func (s *Session) persistSession() {
	if err := s.persistence.SavePlaybackState(s.current); err != nil {
		s.logger.Error("failed to persist playback state", "error", err)
	}
}

// flushProgress writes the current episode's position through immediately.
func (s *Session) flushProgress() {
	if s.current.CurrentEpisode.IsZero() {
		return
	}
	if err := s.persistence.SaveProgress(s.current.CurrentEpisode, s.current.CurrentTime); err != nil {
		s.logger.Error("failed to persist progress", "ref", s.current.CurrentEpisode.String(), "error", err)
		return
	}
	s.lastProgressWrite = s.now()
}
