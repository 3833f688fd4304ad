package question

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/gokatarajesh/quiz-cli/internal/logging"
)

// requiredColumns must all appear in the header row. Order in the file is
// irrelevant; extra columns are ignored.
var requiredColumns = []string{"question", "option_a", "option_b", "option_c", "option_d", "answer"}

// Load reads the question bank at path and returns its rows in file order.
// Failures are diagnosed on the context logger and returned as one of
// *NotFoundError, *MalformedDataError or *SchemaError; all are fatal to the
// caller, none are retried here.
func Load(ctx context.Context, path string) ([]Question, error) {
	logger := logging.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		loadErr := &NotFoundError{Path: path, Err: err}
		logger.Error().Err(err).Str("path", path).Msg("quiz file not found")
		return nil, loadErr
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		loadErr := &MalformedDataError{Path: path, Err: err}
		logger.Error().Err(err).Str("path", path).Msg("failed to parse quiz file")
		return nil, loadErr
	}
	if len(rows) == 0 {
		loadErr := &SchemaError{Missing: requiredColumns}
		return nil, loadErr
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	questions := make([]Question, 0, len(rows)-1)
	for _, row := range rows[1:] {
		questions = append(questions, Question{
			Text:    row[index["question"]],
			OptionA: row[index["option_a"]],
			OptionB: row[index["option_b"]],
			OptionC: row[index["option_c"]],
			OptionD: row[index["option_d"]],
			Answer:  row[index["answer"]],
		})
	}
	return questions, nil
}
