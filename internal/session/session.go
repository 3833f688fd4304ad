package session

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-cli/internal/question"
)

// quitSentinel ends the session early when entered as an answer.
const quitSentinel = "quit"

// Options overrides the session's I/O and randomness, primarily for tests.
// Zero values fall back to stdin, stdout and a time-seeded source.
type Options struct {
	Input  io.Reader
	Output io.Writer
	Rand   *rand.Rand
}

// Session is the runtime state of one quiz playthrough: a privately owned,
// shuffled copy of the question bank plus the running tally. It is not safe
// for concurrent use; one operator drives it from start to finish.
type Session struct {
	questions []question.Question
	score     int
	attempts  int

	id     uuid.UUID
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
}

// New builds a session over a shuffled copy of questions. Every permutation
// is equally likely; the order is fixed for the session's lifetime.
func New(questions []question.Question, opts Options, logger zerolog.Logger) *Session {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	shuffled := make([]question.Question, len(questions))
	copy(shuffled, questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	id := uuid.New()
	return &Session{
		questions: shuffled,
		id:        id,
		in:        bufio.NewScanner(in),
		out:       out,
		logger:    logger.With().Str("session_id", id.String()).Logger(),
	}
}

// ID identifies the session in log output.
func (s *Session) ID() uuid.UUID { return s.id }

// Score reports the running tally: correct answers and valid attempts.
func (s *Session) Score() (score, attempts int) {
	return s.score, s.attempts
}

// Run drives the interactive loop over the session's question order and
// prints the final tally. It blocks on operator input one line per turn and
// returns when the questions are exhausted, the operator enters the quit
// sentinel, or the input stream ends.
func (s *Session) Run() {
	fmt.Fprintln(s.out, "Welcome to the General Knowledge Quiz!")
	fmt.Fprintf(s.out, "Type '%s' anytime to exit the game.\n\n", quitSentinel)

	for _, q := range s.questions {
		fmt.Fprintf(s.out, "Question: %s\n", q.Text)
		fmt.Fprintf(s.out, "A. %s\n", q.OptionA)
		fmt.Fprintf(s.out, "B. %s\n", q.OptionB)
		fmt.Fprintf(s.out, "C. %s\n", q.OptionC)
		fmt.Fprintf(s.out, "D. %s\n", q.OptionD)
		fmt.Fprintf(s.out, "Your answer (A/B/C/D) or '%s': ", quitSentinel)

		if !s.in.Scan() {
			// Input stream ended; treat as an unceremonious stop.
			s.logger.Debug().Msg("input stream ended before quiz completion")
			break
		}
		input := strings.ToLower(strings.TrimSpace(s.in.Text()))

		if input == quitSentinel {
			fmt.Fprintln(s.out, "\nExiting quiz...")
			break
		}

		selected, ok := q.Options()[input]
		if !ok {
			// Invalid input consumes the turn without counting; the loop
			// advances, there is no re-prompt for the same question.
			fmt.Fprintln(s.out, "Invalid input. Please choose A, B, C, or D.")
			fmt.Fprintln(s.out)
			continue
		}

		s.attempts++
		if strings.EqualFold(selected, q.Answer) {
			s.score++
			fmt.Fprintln(s.out, "Correct!")
			fmt.Fprintln(s.out)
		} else {
			fmt.Fprintln(s.out, "Incorrect.")
			fmt.Fprintf(s.out, "The correct answer is: %s\n\n", q.Answer)
		}
	}

	fmt.Fprintln(s.out, "Quiz Ended!")
	if s.attempts > 0 {
		fmt.Fprintf(s.out, "Total Score: %d/%d\n", s.score, s.attempts)
	} else {
		fmt.Fprintln(s.out, "No questions were attempted.")
	}
	s.logger.Info().Int("score", s.score).Int("attempts", s.attempts).
		Int("questions", len(s.questions)).Msg("session finished")
}
