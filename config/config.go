package config

import (
	"errors"
	"fmt"
	"isolation/game"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Agent kinds
const (
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
	Random    = "random"
	Greedy    = "greedy"
)

var ErrInvalidConfig = errors.New("invalid config")

type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Player struct {
	Name      string        `yaml:"name"`
	Kind      string        `yaml:"kind"`
	Score     string        `yaml:"score"`
	Depth     int           `yaml:"depth"`
	MaxDepth  int           `yaml:"maxDepth"`
	Threshold time.Duration `yaml:"threshold"`
	Seed      uint64        `yaml:"seed"`
}

type Server struct {
	Addr   string `yaml:"addr"`
	Player int    `yaml:"player"` // Index into Players of the agent to serve
}

type Config struct {
	Board     Board         `yaml:"board"`
	TimeLimit time.Duration `yaml:"timeLimit"` // Per move
	Players   []Player      `yaml:"players"`
	Server    Server        `yaml:"server"`
}

// Default pits an iterative deepening agent against fixed-depth minimax on a 7x7 board
func Default() Config {
	return Config{
		Board:     Board{Width: 7, Height: 7},
		TimeLimit: 150 * time.Millisecond,
		Players: []Player{
			{Name: "player1", Kind: AlphaBeta, Score: "custom", Threshold: 15 * time.Millisecond},
			{Name: "player2", Kind: Minimax, Score: "improved", Depth: 3, Threshold: 15 * time.Millisecond},
		},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads a YAML file on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 || c.Board.Width > game.MaxSize || c.Board.Height > game.MaxSize {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("%w: time limit must be positive", ErrInvalidConfig)
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("%w: need exactly two players, got %d", ErrInvalidConfig, len(c.Players))
	}
	if c.Players[0].Name == c.Players[1].Name {
		return fmt.Errorf("%w: players share the name %q", ErrInvalidConfig, c.Players[0].Name)
	}
	for i, p := range c.Players {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("player %d: %w", i+1, err)
		}
	}
	if c.Server.Player < 0 || c.Server.Player >= len(c.Players) {
		return fmt.Errorf("%w: server player %d out of range", ErrInvalidConfig, c.Server.Player)
	}
	return nil
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	switch p.Kind {
	case Minimax, AlphaBeta, Random, Greedy:
	default:
		return fmt.Errorf("%w: unknown agent kind %q", ErrInvalidConfig, p.Kind)
	}
	if p.Depth < 0 || p.MaxDepth < 0 || p.Threshold < 0 {
		return fmt.Errorf("%w: negative search limit", ErrInvalidConfig)
	}
	return nil
}
