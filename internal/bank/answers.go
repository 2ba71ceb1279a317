package bank

import (
	"encoding/json"
	"fmt"
)

// #region answers

// AnswerSet maps question IDs to raw answer values. Partial sets are legal;
// the gate decides whether a set is complete enough to score.
type AnswerSet map[string]int

// ParseAnswers decodes an answer payload against a bank. Two wire shapes are
// accepted: an ID-keyed object {"q1":3,...} and a bare positional array
// [3,0,2,...] where index i answers the bank's i-th question. Both decode to
// the ID-keyed form. A null entry in the array form marks the question
// unanswered.
func ParseAnswers(b *Bank, data []byte) (AnswerSet, error) {
	var keyed map[string]int
	if err := json.Unmarshal(data, &keyed); err == nil {
		return AnswerSet(keyed), nil
	}

	var positional []*int
	if err := json.Unmarshal(data, &positional); err != nil {
		return nil, fmt.Errorf("parse answers: payload is neither an id-keyed object nor an array")
	}

	qs := b.Questions(b.DefaultLocale)
	if len(positional) > len(qs) {
		return nil, fmt.Errorf("parse answers: %d values for a %d-question bank", len(positional), len(qs))
	}

	out := make(AnswerSet, len(positional))
	for i, v := range positional {
		if v == nil {
			continue
		}
		out[qs[i].ID] = *v
	}
	return out, nil
}

// OrderedValues flattens an answer set into the bank's question order,
// substituting the scale low for unanswered questions. This is the shape the
// enrichment boundary expects.
func (b *Bank) OrderedValues(answers AnswerSet) []int {
	qs := b.Questions(b.DefaultLocale)
	out := make([]int, len(qs))
	for i, q := range qs {
		if v, ok := answers[q.ID]; ok {
			out[i] = v
		} else {
			out[i] = b.Scale.Lo
		}
	}
	return out
}

// #endregion answers
