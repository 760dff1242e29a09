package domain

type Option struct {
	Value int
	Label string
}

type Question struct {
	Prompt  string
	Options []Option
}

// HasValue reports whether v is one of the question's option values.
func (q Question) HasValue(v int) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// MaxValue returns the highest option value, 0 for a question with no options.
func (q Question) MaxValue() int {
	best := 0
	for i, o := range q.Options {
		if i == 0 || o.Value > best {
			best = o.Value
		}
	}
	return best
}

// AssessmentResult is handed to the results view when the questionnaire completes.
type AssessmentResult struct {
	Score   int
	Answers []int
}
