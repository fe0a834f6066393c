package trigger

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Origin tags for matched capabilities.
const (
	OriginKeyword         = "keyword"
	OriginPattern         = "pattern"
	OriginComplexityBased = "complexity-based"
)

// Capability is one matched rule, ready for ranking and display.
// Capabilities are recomputed per utterance and never persisted.
type Capability struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
	Origin   string `json:"origin"`
}

// Match is the outcome of matching one utterance against a rule set.
// Complexity is empty when no tier's keywords hit.
type Match struct {
	Capabilities []Capability `json:"capabilities"`
	Complexity   string       `json:"complexity,omitempty"`
}

// MatchPrompt matches utterance against the rule set.
//
// A rule matches when the lower-cased utterance contains any of its
// keywords as a substring (deliberately permissive, not word-bounded) or
// when any of its intent patterns, compiled case-insensitively, finds
// the utterance. Invalid patterns never fail the match; they are treated
// as non-matching. Matched capabilities sort by ascending priority rank
// with document order breaking ties. A detected complexity tier appends
// its auto-included capabilities, at medium priority, after the
// trigger-derived list.
func MatchPrompt(utterance string, rs *RuleSet) Match {
	lowered := strings.ToLower(norm.NFC.String(utterance))

	var match Match
	for _, rule := range rs.Rules {
		if origin, ok := ruleMatches(lowered, rule); ok {
			match.Capabilities = append(match.Capabilities, Capability{
				Name:     rule.Name,
				Priority: rule.Priority,
				Origin:   origin,
			})
		}
	}

	sort.SliceStable(match.Capabilities, func(i, j int) bool {
		return Rank(match.Capabilities[i].Priority) < Rank(match.Capabilities[j].Priority)
	})

	match.Complexity = detectComplexity(lowered, rs.Tiers)
	if match.Complexity != "" {
		appendTierSkills(&match, rs.Tiers)
	}
	return match
}

// ruleMatches reports whether lowered triggers rule, and by which
// method. Keyword matching is checked first, so a rule hitting both
// ways is tagged keyword.
func ruleMatches(lowered string, rule Rule) (origin string, ok bool) {
	for _, kw := range rule.Keywords {
		if kw != "" && strings.Contains(lowered, strings.ToLower(kw)) {
			return OriginKeyword, true
		}
	}
	for _, pattern := range rule.Patterns {
		expr, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			continue
		}
		if expr.MatchString(lowered) {
			return OriginPattern, true
		}
	}
	return "", false
}

// detectComplexity returns the first tier, in TierOrder, whose keyword
// list has a substring hit in the lowered utterance. Later tiers are
// not consulted once one matches.
func detectComplexity(lowered string, tiers []Tier) string {
	for _, tier := range tiers {
		for _, kw := range tier.Keywords {
			if kw != "" && strings.Contains(lowered, strings.ToLower(kw)) {
				return tier.Name
			}
		}
	}
	return ""
}

// appendTierSkills appends the detected tier's auto-included
// capabilities not already matched, preserving their listed order.
func appendTierSkills(match *Match, tiers []Tier) {
	var tier *Tier
	for i := range tiers {
		if tiers[i].Name == match.Complexity {
			tier = &tiers[i]
			break
		}
	}
	if tier == nil {
		return
	}

	present := make(map[string]bool, len(match.Capabilities))
	for _, c := range match.Capabilities {
		present[c.Name] = true
	}
	for _, name := range tier.AutoSkills {
		if present[name] {
			continue
		}
		match.Capabilities = append(match.Capabilities, Capability{
			Name:     name,
			Priority: PriorityMedium,
			Origin:   OriginComplexityBased,
		})
		present[name] = true
	}
}
