package curriculum

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/anandk/termquest/internal/corpus"
)

func item(id, term, category string) corpus.StudyItem {
	return corpus.StudyItem{
		ID:       id,
		Term:     term,
		Category: category,
		Kind:     corpus.KindConcept,
	}
}

func testCorpus() []corpus.StudyItem {
	var items []corpus.StudyItem
	// Seven items in one claimed category forces a Part split.
	for i := 0; i < 7; i++ {
		items = append(items, item(
			fmt.Sprintf("py-%d", i), fmt.Sprintf("pyterm-%d", i), "Python Concepts"))
	}
	items = append(items,
		item("js-0", "closure", "JavaScript Concepts"),
		item("js-1", "hoisting", "JavaScript Concepts"),
		item("x-0", "qubit", "Quantum Computing"),
		item("x-1", "entanglement", "Quantum Computing"),
	)
	return items
}

func TestBuildModulesPartition(t *testing.T) {
	items := testCorpus()
	modules := BuildModules(items)

	seen := make(map[string]int)
	for _, m := range modules {
		for _, it := range m.Items {
			seen[it.ID]++
		}
	}

	if len(seen) != len(items) {
		t.Errorf("modules cover %d items, want %d", len(seen), len(items))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("item %q appears in %d modules, want exactly 1", id, n)
		}
	}
}

func TestBuildModulesFallback(t *testing.T) {
	modules := BuildModules(testCorpus())

	last := modules[len(modules)-1]
	if last.ID != "more-topics" {
		t.Fatalf("last module = %q, want more-topics", last.ID)
	}
	if len(last.Items) != 2 {
		t.Errorf("more-topics has %d items, want 2 unclaimed", len(last.Items))
	}
	if !reflect.DeepEqual(last.Categories, []string{"Quantum Computing"}) {
		t.Errorf("more-topics categories = %v", last.Categories)
	}
}

func TestBuildModulesDropsEmpty(t *testing.T) {
	modules := BuildModules(testCorpus())

	for _, m := range modules {
		if len(m.Items) == 0 {
			t.Errorf("module %q kept with zero items", m.ID)
		}
	}
	// Only the two matched definitions plus the fallback survive.
	if len(modules) != 3 {
		ids := make([]string, len(modules))
		for i, m := range modules {
			ids[i] = m.ID
		}
		t.Errorf("got modules %v, want 3", ids)
	}
}

func TestBuildModulesNoFallbackWhenAllClaimed(t *testing.T) {
	modules := BuildModules([]corpus.StudyItem{
		item("py-0", "decorator", "Python Concepts"),
	})

	for _, m := range modules {
		if m.ID == "more-topics" {
			t.Error("more-topics built with nothing unclaimed")
		}
	}
}

func TestBuildModulesDeterministic(t *testing.T) {
	items := testCorpus()
	a := BuildModules(items)
	b := BuildModules(items)

	if !reflect.DeepEqual(a, b) {
		t.Error("repeated builds over the same input differ")
	}
}

func TestBuildLessonsChunking(t *testing.T) {
	modules := BuildModules(testCorpus())
	py := modules[0]
	if py.ID != "python-fundamentals" {
		t.Fatalf("first module = %q, want python-fundamentals", py.ID)
	}

	if len(py.Lessons) != 2 {
		t.Fatalf("got %d lessons for 7 items, want 2", len(py.Lessons))
	}

	first, second := py.Lessons[0], py.Lessons[1]
	if first.Title != "Python Concepts (Part 1)" || second.Title != "Python Concepts (Part 2)" {
		t.Errorf("titles = %q, %q", first.Title, second.Title)
	}
	if len(first.Items) != LessonSize || len(second.Items) != 2 {
		t.Errorf("chunk sizes = %d, %d; want %d, 2", len(first.Items), len(second.Items), LessonSize)
	}
	if first.ID != "python-fundamentals-lesson-0" || second.ID != "python-fundamentals-lesson-1" {
		t.Errorf("lesson ids = %q, %q", first.ID, second.ID)
	}
	if first.Order != 0 || second.Order != 1 {
		t.Errorf("orders = %d, %d", first.Order, second.Order)
	}
}

func TestBuildLessonsNoPartSuffixWhenSingleChunk(t *testing.T) {
	modules := BuildModules([]corpus.StudyItem{
		item("js-0", "closure", "JavaScript Concepts"),
		item("js-1", "hoisting", "JavaScript Concepts"),
	})

	lesson := modules[0].Lessons[0]
	if lesson.Title != "JavaScript Concepts" {
		t.Errorf("title = %q, want bare category name", lesson.Title)
	}
	if lesson.Description != "closure, hoisting" {
		t.Errorf("description = %q", lesson.Description)
	}
}

func TestBuildLessonsPreservesFirstSeenCategoryOrder(t *testing.T) {
	// Interleaved categories within one module; the later-started
	// category must not jump ahead of the earlier one.
	lessons := buildLessons("m", []corpus.StudyItem{
		item("a-0", "t0", "Beta"),
		item("b-0", "t1", "Alpha"),
		item("a-1", "t2", "Beta"),
	})

	if len(lessons) != 2 {
		t.Fatalf("got %d lessons, want 2", len(lessons))
	}
	if lessons[0].Title != "Beta" || lessons[1].Title != "Alpha" {
		t.Errorf("lesson order = %q, %q; want Beta first", lessons[0].Title, lessons[1].Title)
	}
	if len(lessons[0].Items) != 2 {
		t.Errorf("Beta lesson has %d items, want 2", len(lessons[0].Items))
	}
}

func TestQuizID(t *testing.T) {
	m := Module{ID: "python-fundamentals"}
	if got := m.QuizID(); got != "quiz-python-fundamentals" {
		t.Errorf("QuizID() = %q", got)
	}
}
