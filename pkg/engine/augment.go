package engine

import (
	"strings"
	"time"
)

// Augment tokenizes text like the corpus and splices one bridge word, chosen
// uniformly among the candidates, between every adjacent pair that has any.
// Pairs without bridge words are left untouched.
func (e *Engine) Augment(text string) AugmentResult {
	start := time.Now()
	terms := e.analyzer.Analyze(text)
	res := AugmentResult{Terms: terms}

	out := make([]string, 0, len(terms)*2)
	for i, term := range terms {
		if i > 0 {
			prev := terms[i-1]
			if candidates := e.bridgeCandidates(prev, term); len(candidates) > 0 {
				word := candidates[e.chooser.IntN(len(candidates))]
				out = append(out, word)
				res.Insertions = append(res.Insertions, Insertion{
					After:      prev,
					Word:       word,
					Before:     term,
					Candidates: candidates,
				})
			}
		}
		out = append(out, term)
	}
	res.Text = strings.Join(out, " ")

	outcome := OutcomeFound
	if len(res.Insertions) == 0 {
		outcome = OutcomeEmpty
	}
	observe("augment", outcome, start)
	return res
}
