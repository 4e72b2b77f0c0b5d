package curriculum

import (
	"fmt"
	"strings"

	"github.com/anandk/termquest/internal/corpus"
)

// LessonSize is the maximum number of items per lesson.
const LessonSize = 5

// BuildModules partitions the corpus into modules and derives lessons.
// The result is a pure function of the input: given the same item
// ordering it produces identical module, lesson, and item orderings,
// which keeps persisted lesson ids valid across restarts.
//
// Each item is claimed by the first module definition whose category
// patterns contain the item's category. Items no definition claims are
// gathered into a trailing "More Topics" module. Modules that claim
// nothing are dropped.
func BuildModules(items []corpus.StudyItem) []Module {
	claimed := make(map[string]bool, len(items))

	var modules []Module
	for _, def := range moduleDefs {
		patterns := make(map[string]bool, len(def.CategoryPatterns))
		for _, p := range def.CategoryPatterns {
			patterns[p] = true
		}

		var claimedItems []corpus.StudyItem
		for _, it := range items {
			if claimed[it.ID] || !patterns[it.Category] {
				continue
			}
			claimed[it.ID] = true
			claimedItems = append(claimedItems, it)
		}

		if len(claimedItems) == 0 {
			continue
		}

		modules = append(modules, Module{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			Color:       def.Color,
			Categories:  def.CategoryPatterns,
			Items:       claimedItems,
			Lessons:     buildLessons(def.ID, claimedItems),
		})
	}

	var unclaimed []corpus.StudyItem
	for _, it := range items {
		if !claimed[it.ID] {
			unclaimed = append(unclaimed, it)
		}
	}
	if len(unclaimed) > 0 {
		modules = append(modules, Module{
			ID:          "more-topics",
			Title:       "More Topics",
			Description: "Additional concepts and tools",
			Icon:        "📚",
			Color:       "gray",
			Categories:  distinctCategories(unclaimed),
			Items:       unclaimed,
			Lessons:     buildLessons("more-topics", unclaimed),
		})
	}

	return modules
}

// buildLessons groups a module's items by category in first-seen order
// and chunks each category into runs of LessonSize. Map iteration order
// is never relied on: the category order is tracked explicitly.
func buildLessons(moduleID string, items []corpus.StudyItem) []Lesson {
	var order []string
	groups := make(map[string][]corpus.StudyItem)
	for _, it := range items {
		if _, ok := groups[it.Category]; !ok {
			order = append(order, it.Category)
		}
		groups[it.Category] = append(groups[it.Category], it)
	}

	var lessons []Lesson
	seq := 0
	for _, category := range order {
		catItems := groups[category]
		for i := 0; i < len(catItems); i += LessonSize {
			end := i + LessonSize
			if end > len(catItems) {
				end = len(catItems)
			}
			chunk := catItems[i:end]

			title := category
			if len(catItems) > LessonSize {
				title = fmt.Sprintf("%s (Part %d)", category, i/LessonSize+1)
			}

			terms := make([]string, len(chunk))
			for j, it := range chunk {
				terms[j] = it.Term
			}

			lessons = append(lessons, Lesson{
				ID:          fmt.Sprintf("%s-lesson-%d", moduleID, seq),
				ModuleID:    moduleID,
				Title:       title,
				Description: strings.Join(terms, ", "),
				Items:       chunk,
				Order:       seq,
			})
			seq++
		}
	}

	return lessons
}

func distinctCategories(items []corpus.StudyItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
