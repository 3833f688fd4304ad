package question

// Question is one multiple-choice quiz item as loaded from the question
// bank. Values are carried verbatim from the source row; normalization
// (trimming, case folding) happens at comparison time, not here.
type Question struct {
	Text    string
	OptionA string
	OptionB string
	OptionC string
	OptionD string
	Answer  string
}

// Options maps the lowercase choice letters to their option text.
func (q Question) Options() map[string]string {
	return map[string]string{
		"a": q.OptionA,
		"b": q.OptionB,
		"c": q.OptionC,
		"d": q.OptionD,
	}
}
