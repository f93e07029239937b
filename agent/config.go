package agent

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"nogo/game"
	"nogo/searcher"
)

// Search modes.
const (
	SearchRandom = "Random"
	SearchMCTS   = "MCTS"
)

// invalidNameChars may not appear in an agent name.
const invalidNameChars = "[]():; \t\r\n"

// Config is the typed agent configuration, parsed once from key=value
// tokens. Nothing downstream re-reads strings.
type Config struct {
	Name       string
	Role       game.Color
	Seed       uint64
	Seeded     bool
	Search     string
	Simulation int // playout cap per worker; 0 means budget-only
	Threads    int
	Budget     time.Duration
}

// ParseConfig parses a whitespace-separated "key=value ..." argument
// string. Validation failures are fatal configuration errors. Unknown
// keys are ignored so driver-level options can share the string.
func ParseConfig(args string) (Config, error) {
	cfg := Config{
		Name:    "unknown",
		Search:  SearchRandom,
		Threads: 1,
		Budget:  searcher.DefaultBudget,
	}
	for _, token := range strings.Fields(args) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return Config{}, errors.Errorf("malformed option %q", token)
		}
		switch key {
		case "name":
			cfg.Name = value
		case "role":
			switch value {
			case "black":
				cfg.Role = game.Black
			case "white":
				cfg.Role = game.White
			default:
				return Config{}, errors.Errorf("invalid role %q", value)
			}
		case "seed":
			seed, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return Config{}, errors.Wrapf(err, "invalid seed %q", value)
			}
			cfg.Seed = seed
			cfg.Seeded = true
		case "search":
			cfg.Search = value
		case "simulation":
			n, err := strconv.Atoi(value)
			if err != nil {
				return Config{}, errors.Wrapf(err, "invalid simulation count %q", value)
			}
			cfg.Simulation = n
		case "thread":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return Config{}, errors.Errorf("invalid thread count %q", value)
			}
			cfg.Threads = n
		case "budget":
			d, err := time.ParseDuration(value)
			if err != nil || d <= 0 {
				return Config{}, errors.Errorf("invalid budget %q", value)
			}
			cfg.Budget = d
		}
	}
	if strings.ContainsAny(cfg.Name, invalidNameChars) {
		return Config{}, errors.Errorf("invalid name %q", cfg.Name)
	}
	if cfg.Role == game.Empty {
		return Config{}, errors.New("missing role")
	}
	return cfg, nil
}
