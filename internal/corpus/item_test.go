package corpus

import "testing"

func TestHasContent(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"Not specified", false},
		{"Not specified in the docs", false},
		{"a real description", true},
	}

	for _, tt := range tests {
		if got := HasContent(tt.in); got != tt.want {
			t.Errorf("HasContent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name string
		item StudyItem
		want string
	}{
		{
			"prefers whatItIs",
			StudyItem{Term: "grep", WhatItIs: "a line matcher", Definition: "searches text"},
			"a line matcher",
		},
		{
			"falls back to definition",
			StudyItem{Term: "grep", WhatItIs: "Not specified", Definition: "searches text"},
			"searches text",
		},
		{
			"whatItIs equal to term is skipped",
			StudyItem{Term: "grep", WhatItIs: "grep", Definition: "searches text"},
			"searches text",
		},
		{
			"degenerate resolves to term",
			StudyItem{Term: "vim", WhatItIs: "Not specified", Definition: "vim"},
			"vim",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Description(); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}
