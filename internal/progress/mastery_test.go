package progress

import "testing"

func TestAdvance(t *testing.T) {
	tests := []struct {
		from MasteryLevel
		want MasteryLevel
	}{
		{MasteryNew, MasteryLearning},
		{MasterySeen, MasteryLearning},
		{MasteryLearning, MasteryMastered},
		{MasteryMastered, MasteryMastered},
	}

	for _, tt := range tests {
		if got := tt.from.Advance(); got != tt.want {
			t.Errorf("%s.Advance() = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestRegress(t *testing.T) {
	tests := []struct {
		from MasteryLevel
		want MasteryLevel
	}{
		{MasteryNew, MasteryNew},
		{MasterySeen, MasterySeen},
		{MasteryLearning, MasteryLearning},
		{MasteryMastered, MasteryLearning},
	}

	for _, tt := range tests {
		if got := tt.from.Regress(); got != tt.want {
			t.Errorf("%s.Regress() = %s, want %s", tt.from, got, tt.want)
		}
	}
}
