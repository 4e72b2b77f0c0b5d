package corpus

import "strings"

// Kind classifies what sort of thing a study item describes.
type Kind string

const (
	KindConcept         Kind = "concept"
	KindTool            Kind = "tool"
	KindCommand         Kind = "command"
	KindLibrary         Kind = "library"
	KindService         Kind = "service"
	KindPattern         Kind = "pattern"
	KindFramework       Kind = "framework"
	KindLanguageFeature Kind = "language-feature"
)

// AllKinds returns every kind in display order.
func AllKinds() []Kind {
	return []Kind{
		KindConcept, KindTool, KindCommand, KindLibrary,
		KindService, KindPattern, KindFramework, KindLanguageFeature,
	}
}

// sentinelPrefix marks descriptive fields the extraction pipeline could
// not fill in. Such fields are treated as absent.
const sentinelPrefix = "Not specified"

// StudyItem is one atomic unit of knowledge extracted from project
// documentation. Items are immutable after the corpus is loaded.
type StudyItem struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Kind       Kind   `json:"kind"`
	Language   string `json:"language"`
	Project    string `json:"project"`
	Category   string `json:"category"`

	WhatItIs        string `json:"whatItIs"`
	WhyItExists     string `json:"whyItExists"`
	WhereItRuns     string `json:"whereItRuns"`
	WhatItTouches   string `json:"whatItTouches"`
	WhatBreaks      string `json:"whatBreaks"`
	ProjectUsage    string `json:"projectUsage"`
	CommonConfusion string `json:"commonConfusion"`
}

// HasContent reports whether a descriptive field holds meaningful prose
// rather than being empty or sentinel-marked.
func HasContent(s string) bool {
	return s != "" && !strings.HasPrefix(s, sentinelPrefix)
}

// Description resolves the best available description of the item:
// whatItIs if meaningful and distinct from the term, else the
// definition under the same rules, else the bare term. An item whose
// description equals its term is degenerate and unusable for quiz
// generation.
func (it StudyItem) Description() string {
	if HasContent(it.WhatItIs) && it.WhatItIs != it.Term {
		return it.WhatItIs
	}
	if HasContent(it.Definition) && it.Definition != it.Term {
		return it.Definition
	}
	return it.Term
}
