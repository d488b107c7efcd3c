package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/dkahl/bogglegame-go/internal/dependencies/mocks"
	"github.com/dkahl/bogglegame-go/internal/services/auth"
	"github.com/dkahl/bogglegame-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 3-letter words
		"ace", "act", "ant", "arc", "arm", "art", "ash", "ask", "ate", "bat",
		"bee", "cab", "can", "cap", "car", "cat", "cop", "cow", "cup", "cut",
		"dog", "ear", "eat", "fan", "fog", "fox", "gas", "hat", "ice", "jam",
		"key", "lap", "map", "net", "oak", "pan", "pat", "pen", "pig", "pin",
		"pot", "rat", "rib", "rim", "rip", "rod", "row", "run", "sat",
		"sea", "set", "sit", "sun", "tan", "tap", "tar", "tea", "ten", "tin",
		"top", "toy", "tub", "urn", "use", "van", "wax", "web", "win", "zip",
		// 4+ letter words
		"cart", "cast", "coat", "dart", "east", "nest", "pane", "part", "past",
		"quest", "quiet", "quite", "rate", "sand", "seat", "star", "stare",
		"start", "state", "taste", "team", "tear", "test", "trace",
	}
	return t.DictionaryService.LoadWords(words)
}
