package playback

import (
	"testing"
	"time"

	"github.com/castwave/castwave/internal/domain"
	"github.com/castwave/castwave/internal/log"
	"github.com/castwave/castwave/internal/store"
)

type fakeBackend struct {
	loads  []string
	seeks  []float64
	plays  int
	pauses int
	stops  int
}

func (f *fakeBackend) Load(url string) error   { f.loads = append(f.loads, url); return nil }
func (f *fakeBackend) Play() error             { f.plays++; return nil }
func (f *fakeBackend) Pause() error            { f.pauses++; return nil }
func (f *fakeBackend) Seek(t float64) error    { f.seeks = append(f.seeks, t); return nil }
func (f *fakeBackend) Stop() error             { f.stops++; return nil }

// countingStore counts progress writes on top of a real memory-only store.
type countingStore struct {
	domain.Store
	progressWrites int
}

func (c *countingStore) SaveProgress(ref domain.EpisodeRef, seconds float64) error {
	c.progressWrites++
	return c.Store.SaveProgress(ref, seconds)
}

func newTestSession(t *testing.T) (*Session, *fakeBackend, domain.Store) {
	t.Helper()
	persistence, err := store.New("")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	backend := &fakeBackend{}
	return NewSession(backend, persistence, log.NullLogger()), backend, persistence
}

func testRef() domain.EpisodeRef {
	return domain.EpisodeRef{ShowID: "10716", Season: 2, Episode: 5}
}

func TestLoadEpisodeSeedsResumePosition(t *testing.T) {
	s, backend, persistence := newTestSession(t)
	ref := testRef()
	persistence.SaveProgress(ref, 120)

	if err := s.LoadEpisode(ref, "Episode Five", "https://example.com/ep5.mp3"); err != nil {
		t.Fatalf("LoadEpisode: %v", err)
	}

	if s.State() != domain.SessionPaused {
		t.Errorf("state = %v, want paused", s.State())
	}
	snap := s.Snapshot()
	if snap.CurrentTime != 120 {
		t.Errorf("CurrentTime = %v, want 120", snap.CurrentTime)
	}
	if snap.IsPlaying {
		t.Error("loading should land paused")
	}
	if snap.Duration != 0 {
		t.Errorf("Duration = %v, want 0 until backend reports metadata", snap.Duration)
	}
	if len(backend.loads) != 1 || backend.loads[0] != "https://example.com/ep5.mp3" {
		t.Errorf("backend loads = %v", backend.loads)
	}
	if len(backend.seeks) != 1 || backend.seeks[0] != 120 {
		t.Errorf("backend seeks = %v, want [120]", backend.seeks)
	}
}

func TestLoadEpisodeFreshStartsAtZero(t *testing.T) {
	s, backend, _ := newTestSession(t)

	if err := s.LoadEpisode(testRef(), "Episode Five", "https://example.com/ep5.mp3"); err != nil {
		t.Fatalf("LoadEpisode: %v", err)
	}

	if got := s.Snapshot().CurrentTime; got != 0 {
		t.Errorf("CurrentTime = %v, want 0", got)
	}
	if len(backend.seeks) != 0 {
		t.Errorf("fresh load should not seek, got %v", backend.seeks)
	}
}

func TestPlayPauseTransitions(t *testing.T) {
	s, backend, _ := newTestSession(t)

	// No-ops while idle
	s.Play()
	s.Pause()
	s.TogglePlay()
	if s.State() != domain.SessionIdle || backend.plays != 0 || backend.pauses != 0 {
		t.Fatal("play/pause should be no-ops while idle")
	}

	s.LoadEpisode(testRef(), "Ep", "https://example.com/a.mp3")

	s.Play()
	if s.State() != domain.SessionPlaying || !s.Snapshot().IsPlaying {
		t.Fatal("Play should transition to playing")
	}

	s.TogglePlay()
	if s.State() != domain.SessionPaused || s.Snapshot().IsPlaying {
		t.Fatal("TogglePlay should transition back to paused")
	}

	if backend.plays != 1 || backend.pauses != 1 {
		t.Errorf("backend plays=%d pauses=%d, want 1/1", backend.plays, backend.pauses)
	}
}

func TestSeekClamps(t *testing.T) {
	s, backend, _ := newTestSession(t)
	s.LoadEpisode(testRef(), "Ep", "https://example.com/a.mp3")
	s.OnDurationChange(300)

	tests := []struct {
		seek float64
		want float64
	}{
		{-5, 0},
		{150, 150},
		{400, 300},
	}

	for _, tt := range tests {
		if err := s.Seek(tt.seek); err != nil {
			t.Fatalf("Seek(%v): %v", tt.seek, err)
		}
		if got := s.Snapshot().CurrentTime; got != tt.want {
			t.Errorf("Seek(%v) left position %v, want %v", tt.seek, got, tt.want)
		}
		if last := backend.seeks[len(backend.seeks)-1]; last != tt.want {
			t.Errorf("backend saw seek %v, want %v", last, tt.want)
		}
	}
}

func TestOnTimeUpdateThrottlesProgressWrites(t *testing.T) {
	persistence, err := store.New("")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	counter := &countingStore{Store: persistence}
	s := NewSession(&fakeBackend{}, counter, log.NullLogger())

	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	s.LoadEpisode(testRef(), "Ep", "https://example.com/a.mp3")
	counter.progressWrites = 0

	// First tick after the interval writes; rapid ticks within it do not.
	clock = clock.Add(progressWriteInterval)
	s.OnTimeUpdate(1)
	clock = clock.Add(100 * time.Millisecond)
	s.OnTimeUpdate(2)
	clock = clock.Add(100 * time.Millisecond)
	s.OnTimeUpdate(3)

	if counter.progressWrites != 1 {
		t.Fatalf("progress writes = %d, want 1", counter.progressWrites)
	}

	clock = clock.Add(progressWriteInterval)
	s.OnTimeUpdate(4)
	if counter.progressWrites != 2 {
		t.Fatalf("progress writes = %d, want 2 after interval elapsed", counter.progressWrites)
	}

	// Position still tracks every callback even when the write is skipped.
	if got := s.Snapshot().CurrentTime; got != 4 {
		t.Errorf("CurrentTime = %v, want 4", got)
	}
}

func TestPauseFlushesProgressImmediately(t *testing.T) {
	s, _, persistence := newTestSession(t)
	ref := testRef()

	s.LoadEpisode(ref, "Ep", "https://example.com/a.mp3")
	s.Play()
	s.OnDurationChange(600)
	s.OnTimeUpdate(42)
	s.Pause()

	if got := persistence.GetProgress(ref); got != 42 {
		t.Errorf("persisted progress = %v, want 42", got)
	}
}

func TestRestoreAlwaysLandsPaused(t *testing.T) {
	persistence, err := store.New("")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	ref := testRef()

	// A prior run that quit mid-playback.
	persistence.SavePlaybackState(domain.PlaybackState{
		CurrentEpisode: ref,
		EpisodeTitle:   "Episode Five",
		AudioURL:       "https://example.com/ep5.mp3",
		IsPlaying:      true,
		CurrentTime:    80,
		Duration:       600,
	})
	persistence.SaveProgress(ref, 95)

	backend := &fakeBackend{}
	s := NewSession(backend, persistence, log.NullLogger())

	if !s.Restore() {
		t.Fatal("Restore should report a restored session")
	}
	if s.State() != domain.SessionPaused {
		t.Errorf("state = %v, want paused regardless of persisted flag", s.State())
	}
	snap := s.Snapshot()
	if snap.IsPlaying {
		t.Error("restored session must not auto-play")
	}
	if snap.CurrentTime != 95 {
		t.Errorf("CurrentTime = %v, want the per-episode progress 95", snap.CurrentTime)
	}
	if len(backend.loads) != 1 || len(backend.seeks) != 1 || backend.seeks[0] != 95 {
		t.Errorf("backend loads=%v seeks=%v", backend.loads, backend.seeks)
	}
}

func TestRestoreWithoutSavedSession(t *testing.T) {
	s, backend, _ := newTestSession(t)
	if s.Restore() {
		t.Fatal("Restore should report false with nothing persisted")
	}
	if s.State() != domain.SessionIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if len(backend.loads) != 0 {
		t.Errorf("backend should not be touched, got loads %v", backend.loads)
	}
}

func TestShutdownFlushesAndStops(t *testing.T) {
	s, backend, persistence := newTestSession(t)
	ref := testRef()

	s.LoadEpisode(ref, "Ep", "https://example.com/a.mp3")
	s.Play()
	s.OnDurationChange(600)
	s.OnTimeUpdate(33)
	s.Shutdown()

	if got := persistence.GetProgress(ref); got != 33 {
		t.Errorf("persisted progress = %v, want 33", got)
	}
	if backend.stops != 1 {
		t.Errorf("backend stops = %d, want 1", backend.stops)
	}

	// The persisted session must not claim to be playing.
	saved, ok := persistence.GetPlaybackState()
	if !ok {
		t.Fatal("session should remain persisted after shutdown")
	}
	if saved.IsPlaying {
		t.Error("persisted session claims to be playing after shutdown")
	}
}
