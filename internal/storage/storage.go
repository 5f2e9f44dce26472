package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/pranavtiwari1/chess-master/internal/board"
	"github.com/pranavtiwari1/chess-master/internal/engine"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// GameMode represents the game mode
type GameMode int

const (
	ModeHumanVsComputer GameMode = iota
	ModeHumanVsHuman
)

// String returns a short key for the mode.
func (m GameMode) String() string {
	if m == ModeHumanVsHuman {
		return "hvh"
	}
	return "hvc"
}

// DefaultThinkingDelay is how long the computer appears to think before
// its move is shown.
const DefaultThinkingDelay = 500 * time.Millisecond

// Preferences stores user settings
type Preferences struct {
	Difficulty    engine.Difficulty `json:"difficulty"`
	GameMode      GameMode          `json:"game_mode"`
	PlayerColor   board.Color       `json:"player_color"`
	ThinkingDelay time.Duration     `json:"thinking_delay"`
	LastPlayed    time.Time         `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		Difficulty:    engine.Medium,
		GameMode:      ModeHumanVsComputer,
		PlayerColor:   board.White,
		ThinkingDelay: DefaultThinkingDelay,
	}
}

// GameStats stores game statistics
type GameStats struct {
	GamesPlayed   int            `json:"games_played"`
	Wins          int            `json:"wins"`
	Losses        int            `json:"losses"`
	Draws         int            `json:"draws"`
	WinsByDiff    map[string]int `json:"wins_by_difficulty"`
	LossesByDiff  map[string]int `json:"losses_by_difficulty"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
	LongestStreak int            `json:"longest_win_streak"`
	CurrentStreak int            `json:"current_streak"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{
		WinsByDiff:   make(map[string]int),
		LossesByDiff: make(map[string]int),
	}
}

// WinRate returns the win rate as a percentage (0-100)
func (s *GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// GameResult represents the result of a completed game from the human
// player's point of view.
type GameResult struct {
	Won        bool
	Draw       bool
	Mode       GameMode
	Difficulty engine.Difficulty
	Duration   time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir. An empty dir uses the
// platform data directory.
func Open(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		if dir, err = GetDatabaseDir(); err != nil {
			return nil, fmt.Errorf("resolve database dir: %w", err)
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	if err := s.get(keyPreferences, prefs); err != nil {
		return DefaultPreferences(), err
	}
	if prefs.ThinkingDelay < 0 {
		prefs.ThinkingDelay = 0
	}
	return prefs, nil
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	if err := s.get(keyStats, stats); err != nil {
		return NewGameStats(), err
	}
	if stats.WinsByDiff == nil {
		stats.WinsByDiff = make(map[string]int)
	}
	if stats.LossesByDiff == nil {
		stats.LossesByDiff = make(map[string]int)
	}
	return stats, nil
}

// RecordGame records a completed game and updates statistics. Per-difficulty
// counters are only kept for games against the computer.
func (s *Storage) RecordGame(result GameResult) (*GameStats, error) {
	stats, err := s.LoadStats()
	if err != nil {
		return nil, err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	vsComputer := result.Mode == ModeHumanVsComputer
	diffKey := result.Difficulty.String()

	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case result.Won:
		stats.Wins++
		stats.CurrentStreak++
		stats.LongestStreak = max(stats.LongestStreak, stats.CurrentStreak)
		if vsComputer {
			stats.WinsByDiff[diffKey]++
		}
	default:
		stats.Losses++
		stats.CurrentStreak = 0
		if vsComputer {
			stats.LossesByDiff[diffKey]++
		}
	}

	if err := s.SaveStats(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the value at key into v, leaving v untouched when the key is
// missing.
func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}
