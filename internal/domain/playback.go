package domain

// SessionState is the playback state machine's current state.
type SessionState int

const (
	// SessionIdle means no episode is loaded.
	SessionIdle SessionState = iota
	// SessionPaused means an episode is loaded but not playing.
	SessionPaused
	// SessionPlaying means the loaded episode is playing.
	SessionPlaying
)

// String returns a human-readable representation of the session state.
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "Idle"
	case SessionPaused:
		return "Paused"
	case SessionPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// PlaybackState is the persisted "now playing" snapshot. CurrentTime is
// transient and clamped to [0, Duration] once the duration is known;
// per-episode progress lives in a separate mapping keyed by EpisodeRef.
type PlaybackState struct {
	CurrentEpisode EpisodeRef `json:"currentEpisode"`
	EpisodeTitle   string     `json:"episodeTitle"`
	AudioURL       string     `json:"audioUrl"`
	IsPlaying      bool       `json:"isPlaying"`
	CurrentTime    float64    `json:"currentTime"` // seconds
	Duration       float64    `json:"duration"`    // seconds, 0 until metadata arrives
}

// AudioBackend is the black-box media collaborator: it can load, play,
// pause, and seek a stream, and it reports time and duration back through
// the handler. The session never polls it.
type AudioBackend interface {
	// Load prepares the stream at url, replacing any current stream.
	// Playback stays paused until Play is called.
	Load(url string) error

	Play() error
	Pause() error

	// Seek moves the playback position to t seconds.
	Seek(t float64) error

	Stop() error
}

// AudioEvents receives media callbacks from the backend. Implemented by
// PlaybackSession; invoked by the backend as the stream progresses.
type AudioEvents interface {
	// OnTimeUpdate reports the current playback position in seconds.
	OnTimeUpdate(t float64)

	// OnDurationChange reports the stream duration once metadata is known.
	OnDurationChange(d float64)
}
