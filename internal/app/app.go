package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-cli/internal/config"
	"github.com/gokatarajesh/quiz-cli/internal/logging"
	"github.com/gokatarajesh/quiz-cli/internal/question"
	"github.com/gokatarajesh/quiz-cli/internal/session"
)

// Application aggregates the wired pieces of one quiz run.
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	session *session.Session
}

// New bootstraps the logger, loads the question bank and builds the session.
// A load failure aborts construction; no partial session exists afterwards.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	ctx = logging.IntoContext(ctx, logger)

	questions, err := question.Load(ctx, cfg.Quiz.File)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("questions", len(questions)).Str("file", cfg.Quiz.File).
		Msg("question bank loaded")

	sess := session.New(questions, session.Options{}, logger)

	return &Application{
		cfg:     cfg,
		logger:  logger,
		session: sess,
	}, nil
}

// Run plays the quiz session against the operator's terminal.
func (a *Application) Run(ctx context.Context) error {
	a.session.Run()
	return nil
}
