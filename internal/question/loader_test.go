package question

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeQuizFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiz.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReturnsRowsInOrder(t *testing.T) {
	path := writeQuizFile(t, `question,option_a,option_b,option_c,option_d,answer
"What is 2+2?","3","4","5","6","4"
"Capital of France?","Paris","London","Berlin","Madrid","Paris"
"Largest planet?","Earth","Mars","Jupiter","Venus","Jupiter"
`)

	questions, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, "What is 2+2?", questions[0].Text)
	assert.Equal(t, "3", questions[0].OptionA)
	assert.Equal(t, "4", questions[0].OptionB)
	assert.Equal(t, "5", questions[0].OptionC)
	assert.Equal(t, "6", questions[0].OptionD)
	assert.Equal(t, "4", questions[0].Answer)

	assert.Equal(t, "Capital of France?", questions[1].Text)
	assert.Equal(t, "Largest planet?", questions[2].Text)
}

func TestLoadPreservesFieldValuesVerbatim(t *testing.T) {
	// No trimming at load time; whitespace survives into the record.
	path := writeQuizFile(t, `question,option_a,option_b,option_c,option_d,answer
"q"," a","b ","c","d","b "
`)

	questions, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, " a", questions[0].OptionA)
	assert.Equal(t, "b ", questions[0].OptionB)
	assert.Equal(t, "b ", questions[0].Answer)
}

func TestLoadIgnoresExtraColumnsAndOrder(t *testing.T) {
	path := writeQuizFile(t, `answer,difficulty,question,option_d,option_c,option_b,option_a
"4","easy","What is 2+2?","6","5","4","3"
`)

	questions, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is 2+2?", questions[0].Text)
	assert.Equal(t, "3", questions[0].OptionA)
	assert.Equal(t, "4", questions[0].OptionB)
	assert.Equal(t, "5", questions[0].OptionC)
	assert.Equal(t, "6", questions[0].OptionD)
	assert.Equal(t, "4", questions[0].Answer)
}

func TestLoadMissingColumnsFailsWithSchemaError(t *testing.T) {
	path := writeQuizFile(t, `question,option_a,option_b,option_d
"q","a","b","d"
`)

	questions, err := Load(context.Background(), path)
	assert.Nil(t, questions)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"option_c", "answer"}, schemaErr.Missing)
	assert.Contains(t, schemaErr.Error(), "option_c")
	assert.Contains(t, schemaErr.Error(), "answer")
}

func TestLoadMissingFileFailsWithNotFoundError(t *testing.T) {
	questions, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Nil(t, questions)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Error(), "nope.csv")
}

func TestLoadMalformedFileFailsWithMalformedDataError(t *testing.T) {
	// Second data row has fewer fields than the header.
	path := writeQuizFile(t, `question,option_a,option_b,option_c,option_d,answer
"q","a","b","c","d","a"
"short","row"
`)

	questions, err := Load(context.Background(), path)
	assert.Nil(t, questions)

	var malformed *MalformedDataError
	require.ErrorAs(t, err, &malformed)
}

func TestLoadBadQuotingFailsWithMalformedDataError(t *testing.T) {
	path := writeQuizFile(t, `question,option_a,option_b,option_c,option_d,answer
"q,"a"b,"b","c","d","a"
`)

	_, err := Load(context.Background(), path)

	var malformed *MalformedDataError
	require.ErrorAs(t, err, &malformed)
}
