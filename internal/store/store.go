package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/castwave/castwave/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketFavorites = []byte("favorites")
	bucketPlayback  = []byte("playback")
	bucketProgress  = []byte("progress")
	bucketPrefs     = []byte("prefs")
)

// Persisted keys. Each key's value is overwritten wholesale on every write;
// a missing or malformed value falls back to its documented default.
const (
	keyFavorites      = "favorites"
	keyIsPlaying      = "isPlaying"
	keyCurrentEpisode = "currentEpisode"
	keyDuration       = "duration"
	keyDarkMode       = "isDarkMode"
	keyCurrentPage    = "currentPage"
	progressPrefix    = "progress_"
)

// Store implements domain.Store using BoltDB.
type Store struct {
	db *bolt.DB
	mu sync.RWMutex

	// In-memory map doubles as a memory-only mode for tests (nil db)
	cache map[string][]byte
}

// New opens (or creates) the database under dataDir. An empty dataDir
// selects memory-only mode with no persistence.
func New(dataDir string) (*Store, error) {
	if dataDir == "" {
		return &Store{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "castwave.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketFavorites, bucketPlayback, bucketProgress, bucketPrefs} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, cache: make(map[string][]byte)}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *Store) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *Store) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

// === Favorites ===

// GetFavorites rehydrates the favorite set. Absent or corrupt storage
// degrades to an empty set, never an error.
func (s *Store) GetFavorites() []domain.FavoriteEntry {
	var entries []domain.FavoriteEntry
	if !s.get(bucketFavorites, keyFavorites, &entries) {
		return nil
	}
	return entries
}

func (s *Store) SaveFavorites(entries []domain.FavoriteEntry) error {
	if entries == nil {
		entries = []domain.FavoriteEntry{}
	}
	return s.set(bucketFavorites, keyFavorites, entries)
}

// === Playback session ===

// GetPlaybackState rehydrates the persisted session. The second return is
// false when no session was ever persisted or the stored value is corrupt.
func (s *Store) GetPlaybackState() (domain.PlaybackState, bool) {
	var state domain.PlaybackState
	if !s.get(bucketPlayback, keyCurrentEpisode, &state) {
		return domain.PlaybackState{}, false
	}
	if state.CurrentEpisode.IsZero() {
		return domain.PlaybackState{}, false
	}

	// isPlaying and duration live under their own keys; missing values
	// keep the zero default.
	s.get(bucketPlayback, keyIsPlaying, &state.IsPlaying)
	s.get(bucketPlayback, keyDuration, &state.Duration)
	return state, true
}

func (s *Store) SavePlaybackState(state domain.PlaybackState) error {
	if err := s.set(bucketPlayback, keyCurrentEpisode, state); err != nil {
		return err
	}
	if err := s.set(bucketPlayback, keyIsPlaying, state.IsPlaying); err != nil {
		return err
	}
	return s.set(bucketPlayback, keyDuration, state.Duration)
}

// === Per-episode progress ===

// GetProgress returns the persisted position for an episode, 0 when none.
func (s *Store) GetProgress(ref domain.EpisodeRef) float64 {
	var seconds float64
	if !s.get(bucketProgress, progressPrefix+ref.Key(), &seconds) {
		return 0
	}
	if seconds < 0 {
		return 0
	}
	return seconds
}

func (s *Store) SaveProgress(ref domain.EpisodeRef, seconds float64) error {
	return s.set(bucketProgress, progressPrefix+ref.Key(), seconds)
}

// === UI preferences ===

func (s *Store) GetDarkMode(defaultValue bool) bool {
	var on bool
	if !s.get(bucketPrefs, keyDarkMode, &on) {
		return defaultValue
	}
	return on
}

func (s *Store) SaveDarkMode(on bool) error {
	return s.set(bucketPrefs, keyDarkMode, on)
}

// GetCurrentPage returns the persisted listing page. The second return is
// false when absent; stored values below 1 are treated as absent.
func (s *Store) GetCurrentPage() (int, bool) {
	var page int
	if !s.get(bucketPrefs, keyCurrentPage, &page) {
		return 1, false
	}
	if page < 1 {
		return 1, false
	}
	return page, true
}

func (s *Store) SaveCurrentPage(page int) error {
	return s.set(bucketPrefs, keyCurrentPage, page)
}
