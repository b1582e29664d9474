package types

// GapAnalysis compares your audit against a competitor's.
type GapAnalysis struct {
	Recommendations []Recommendation `json:"recommendations"`
	Summary         GapSummary       `json:"summary"`
}

// Recommendation is a prioritized action derived from one gap signal.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Signal   string   `json:"signal"`
	Action   string   `json:"action"`
	Impact   int      `json:"impact"`
}

// GapSummary holds both overall scores and the categories with the largest deficit.
type GapSummary struct {
	YourScore   int        `json:"yourScore"`
	TheirScore  int        `json:"theirScore"`
	BiggestGaps []Category `json:"biggestGaps"`
}
