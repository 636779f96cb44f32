package llm

import "github.com/missionctl/missionctl/pkg/config"

// Candidate sources, recorded on every usage event.
const (
	SourceFeatureOverride = "feature_override"
	SourceGlobalDefault   = "global_default"
	SourceDefault         = "default"
)

// Candidate is one model to try, in order.
type Candidate struct {
	Provider string
	ModelID  string
	Source   string
}

// ResolveCandidates turns the user's preferences and the built-in chain into
// an ordered candidate list. featurePref and globalPref are nil when the user
// has no (enabled) preference at that level. The default chain is always
// appended as fallbacks, deduplicated by provider and model id. Pure so the
// policy is testable without I/O.
func ResolveCandidates(featurePref, globalPref *config.ModelRef, defaultChain []config.ModelRef) []Candidate {
	var candidates []Candidate
	seen := make(map[string]bool)

	add := func(provider, modelID, source string) {
		key := provider + "\x00" + modelID
		if seen[key] {
			return
		}
		seen[key] = true
		candidates = append(candidates, Candidate{Provider: provider, ModelID: modelID, Source: source})
	}

	switch {
	case featurePref != nil:
		add(featurePref.Provider, featurePref.ModelID, SourceFeatureOverride)
	case globalPref != nil:
		add(globalPref.Provider, globalPref.ModelID, SourceGlobalDefault)
	}
	for _, ref := range defaultChain {
		add(ref.Provider, ref.ModelID, SourceDefault)
	}
	return candidates
}
