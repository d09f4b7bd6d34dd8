package plan

import "strings"

// tagRule maps a lowercase keyword to the label shown on a topic row.
type tagRule struct {
	keyword string
	label   string
}

// tagRules is evaluated in order; every matching rule contributes a tag.
var tagRules = []tagRule{
	{"algorithm", "Algorithm"},
	{"search", "Search"},
	{"sort", "Sort"},
	{"graph", "Graph"},
	{"recursion", "Recursion"},
	{"dynamic", "Dynamic Programming"},
	{"greedy", "Greedy"},
}

// TopicTags derives category tags from a topic name by case-insensitive
// substring match. It returns nil when nothing matches.
func TopicTags(name string) []string {
	lower := strings.ToLower(name)
	var tags []string
	for _, r := range tagRules {
		if strings.Contains(lower, r.keyword) {
			tags = append(tags, r.label)
		}
	}
	return tags
}
