package quizgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/anandk/termquest/internal/corpus"
)

// multipleChoiceBias is the probability of attempting a multiple-choice
// question before falling to true/false for an item.
const multipleChoiceBias = 0.6

// Generator synthesizes quiz questions from corpus text. It carries its
// own rand source so tests can seed it deterministically.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded from src.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate produces up to count questions from the scoped items, using
// the full corpus as the distractor pool. Items that cannot yield a
// well-formed question of the chosen type are skipped, never retried
// with the other type and never revisited, so the result may be
// shorter than count. The final ordering is re-shuffled so question
// types interleave instead of following corpus order.
func (g *Generator) Generate(scoped, pool []corpus.StudyItem, count int) []Question {
	var questions []Question
	for _, item := range Shuffle(g.rng, scoped) {
		if len(questions) >= count {
			break
		}

		var q *Question
		if g.rng.Float64() < multipleChoiceBias {
			q = g.multipleChoice(item, pool)
		} else {
			q = g.trueFalse(item, pool)
		}
		if q != nil {
			questions = append(questions, *q)
		}
	}

	return Shuffle(g.rng, questions)
}

// multipleChoice builds a 4-option question: the item's description
// plus three distractor descriptions, shuffled together. Returns nil
// when the item is degenerate or fewer than three distractors exist.
func (g *Generator) multipleChoice(item corpus.StudyItem, pool []corpus.StudyItem) *Question {
	desc := item.Description()
	if desc == item.Term {
		return nil
	}

	distractors := g.pickDistractors(item, pool, 3)
	if len(distractors) < 3 {
		return nil
	}

	// The correct flag rides through the shuffle with its option, so a
	// distractor that happens to share the correct text cannot steal
	// the answer slot.
	type option struct {
		text    string
		correct bool
	}
	options := []option{{text: desc, correct: true}}
	for _, d := range distractors {
		options = append(options, option{text: d.Description()})
	}

	shuffled := Shuffle(g.rng, options)
	texts := make([]string, len(shuffled))
	correct := 0
	for i, opt := range shuffled {
		texts[i] = opt.text
		if opt.correct {
			correct = i
		}
	}

	return &Question{
		ID:           "mc-" + item.ID,
		Type:         TypeMultipleChoice,
		Prompt:       fmt.Sprintf("What is %q?", item.Term),
		Options:      texts,
		CorrectIndex: correct,
		Explanation:  desc,
		ItemID:       item.ID,
	}
}

// trueFalse builds a statement pairing the term with either its own
// description (true) or a distractor's (false). A coin flip picks the
// polarity; a false statement with no available distractor fails
// outright rather than falling back to true.
func (g *Generator) trueFalse(item corpus.StudyItem, pool []corpus.StudyItem) *Question {
	desc := item.Description()
	if desc == item.Term {
		return nil
	}

	if g.rng.Float64() < 0.5 {
		return &Question{
			ID:          "tf-" + item.ID,
			Type:        TypeTrueFalse,
			Prompt:      fmt.Sprintf("True or False: %q is %s", item.Term, asSentence(desc)),
			CorrectBool: true,
			Explanation: fmt.Sprintf("Correct! %s is %s", item.Term, asSentence(desc)),
			ItemID:      item.ID,
		}
	}

	distractors := g.pickDistractors(item, pool, 1)
	if len(distractors) < 1 {
		return nil
	}
	wrong := distractors[0].Description()

	return &Question{
		ID:          "tf-" + item.ID,
		Type:        TypeTrueFalse,
		Prompt:      fmt.Sprintf("True or False: %q is %s", item.Term, asSentence(wrong)),
		CorrectBool: false,
		Explanation: fmt.Sprintf("False. %s is actually %s", item.Term, asSentence(desc)),
		ItemID:      item.ID,
	}
}

// pickDistractors samples up to count other items whose what-it-is text
// is meaningful and distinct from their own term, by shuffling the
// eligible pool and taking the head. Items whose description matches
// the correct answer are excluded: as an option they would duplicate
// the answer text, and as a false statement they would be true.
func (g *Generator) pickDistractors(correct corpus.StudyItem, pool []corpus.StudyItem, count int) []corpus.StudyItem {
	answer := correct.Description()
	var candidates []corpus.StudyItem
	for _, it := range pool {
		if it.ID == correct.ID {
			continue
		}
		if !corpus.HasContent(it.WhatItIs) || it.WhatItIs == it.Term {
			continue
		}
		if it.Description() == answer {
			continue
		}
		candidates = append(candidates, it)
	}

	shuffled := Shuffle(g.rng, candidates)
	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}
	return shuffled
}

func asSentence(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
