package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration for the quiz binary.
type App struct {
	Name string `env:"APP_NAME" envDefault:"quiz-cli"`
	Env  string `env:"APP_ENV" envDefault:"development"`

	Quiz Quiz
}

// Quiz groups gameplay settings.
type Quiz struct {
	// File is the question bank consulted at startup. The default matches
	// the bundled sample so the binary runs with no environment at all.
	File string `env:"QUIZ_FILE" envDefault:"general_knowledge_quiz.csv"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
