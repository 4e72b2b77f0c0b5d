package corpus

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedCorpus(t *testing.T) {
	items, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("corpus is empty")
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" || it.Term == "" || it.Category == "" {
			t.Errorf("item %+v missing required fields", it)
		}
		if seen[it.ID] {
			t.Errorf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestDecodeRejectsBadShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not an array", `{"id": "x"}`},
		{"missing required fields", `[{"id": "x"}]`},
		{"bad kind", `[{"id": "x", "term": "t", "definition": "d", "kind": "gadget", "category": "c"}]`},
		{"invalid json", `[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decode([]byte(tt.raw)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDecodeRejectsDuplicateIDs(t *testing.T) {
	raw := `[
		{"id": "x", "term": "a", "definition": "d", "kind": "tool", "category": "c"},
		{"id": "x", "term": "b", "definition": "d", "kind": "tool", "category": "c"}
	]`
	_, err := decode([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate id error, got %v", err)
	}
}
