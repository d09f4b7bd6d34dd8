package plan

import (
	"slices"
	"testing"
)

func TestTopicTags(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  []string
	}{
		{"two tags in keyword order", "Binary Search Algorithm", []string{"Algorithm", "Search"}},
		{"no match", "Lunch", nil},
		{"case insensitive", "GRAPH traversal", []string{"Graph"}},
		{"dynamic maps to full label", "Dynamic programming basics", []string{"Dynamic Programming"}},
		{"order follows keyword list not topic text", "Greedy vs Sorting", []string{"Sort", "Greedy"}},
		{"all of them", "algorithm search sort graph recursion dynamic greedy",
			[]string{"Algorithm", "Search", "Sort", "Graph", "Recursion", "Dynamic Programming", "Greedy"}},
		{"substring inside word", "Researching", []string{"Search"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopicTags(tt.topic)
			if !slices.Equal(got, tt.want) {
				t.Errorf("TopicTags(%q) = %v, want %v", tt.topic, got, tt.want)
			}
		})
	}
}

func TestTopicTagsIsPure(t *testing.T) {
	first := TopicTags("Recursion and Graph Search")
	second := TopicTags("Recursion and Graph Search")
	if !slices.Equal(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}
