package plan

import (
	"tidy/internal/classify"
	"tidy/internal/scan"
)

// Entry maps one source file to its computed destination.
type Entry struct {
	Source            scan.FileEntry    `json:"source"`
	Destination       string            `json:"destination"`
	Category          classify.Category `json:"category"`
	CollisionResolved bool              `json:"collision_resolved"`
}

// Plan is the immutable result of one planning pass. All destinations are
// pairwise distinct and avoid pre-existing files.
type Plan struct {
	TargetDir string  `json:"target_dir"`
	Entries   []Entry `json:"entries"`
}

// IsEmpty reports whether the plan contains no moves.
func (p *Plan) IsEmpty() bool {
	return p == nil || len(p.Entries) == 0
}

// CategoryCounts tallies plan entries per category.
func (p *Plan) CategoryCounts() map[classify.Category]int {
	counts := make(map[classify.Category]int)
	if p == nil {
		return counts
	}
	for _, entry := range p.Entries {
		counts[entry.Category]++
	}
	return counts
}
