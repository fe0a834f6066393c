// Package trigger matches free-text utterances against a rule set of
// keyword and intent-pattern triggers, ranks the matched capabilities by
// priority, and classifies the utterance into a complexity tier that can
// pull in further capabilities.
package trigger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Priority ranks for capability sorting. Unknown priorities sort last.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"

	unknownPriorityRank = 99
)

var priorityRanks = map[string]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// Rank returns the sort rank of a priority string.
func Rank(priority string) int {
	if r, ok := priorityRanks[priority]; ok {
		return r
	}
	return unknownPriorityRank
}

// Rule is one named capability with its trigger conditions.
type Rule struct {
	Name     string
	Priority string
	Keywords []string
	Patterns []string
}

// Tier is one complexity level: its trigger keywords and the
// capabilities implicitly added when the tier is detected.
type Tier struct {
	Name       string
	Keywords   []string
	AutoSkills []string
}

// TierOrder is the fixed detection order. The first tier with a keyword
// hit wins, so advanced claims precedence over standard and simple.
var TierOrder = []string{"advanced", "standard", "simple"}

// RuleSet is a loaded rule document. Rules preserve document order,
// which breaks priority ties during sorting; Tiers are arranged in
// TierOrder regardless of how the document lists them.
type RuleSet struct {
	Rules []Rule
	Tiers []Tier
}

// ErrNoRules reports a rule document with no usable content.
var ErrNoRules = errors.New("trigger: rule set has no rules")

// ruleBody is the wire form of one rule's configuration.
type ruleBody struct {
	Priority       string `json:"priority"`
	Type           string `json:"type"`
	PromptTriggers struct {
		Keywords       []string `json:"keywords"`
		IntentPatterns []string `json:"intentPatterns"`
	} `json:"promptTriggers"`
}

// tierBody is the wire form of one complexity tier.
type tierBody struct {
	Keywords   []string `json:"keywords"`
	AutoSkills []string `json:"auto_skills"`
}

// ParseRules decodes a rule document. The skills object is read through
// the token stream so rule order matches document order; encoding/json
// maps would lose it and with it the stable tie-break.
func ParseRules(data []byte) (*RuleSet, error) {
	var doc struct {
		Skills           json.RawMessage     `json:"skills"`
		ComplexityLevels map[string]tierBody `json:"complexity_levels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("trigger: parse rules: %w", err)
	}

	rs := &RuleSet{}
	if len(doc.Skills) > 0 {
		rules, err := parseOrderedRules(doc.Skills)
		if err != nil {
			return nil, err
		}
		rs.Rules = rules
	}
	for _, name := range TierOrder {
		if body, ok := doc.ComplexityLevels[name]; ok {
			rs.Tiers = append(rs.Tiers, Tier{
				Name:       name,
				Keywords:   body.Keywords,
				AutoSkills: body.AutoSkills,
			})
		}
	}

	if len(rs.Rules) == 0 && len(rs.Tiers) == 0 {
		return nil, ErrNoRules
	}
	return rs, nil
}

func parseOrderedRules(raw json.RawMessage) ([]Rule, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("trigger: parse rules: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("trigger: %q must be an object", "skills")
	}

	var rules []Rule
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("trigger: parse rules: %w", err)
		}
		name, _ := keyTok.(string)

		var body ruleBody
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("trigger: rule %q: %w", name, err)
		}
		rules = append(rules, Rule{
			Name:     name,
			Priority: body.Priority,
			Keywords: body.PromptTriggers.Keywords,
			Patterns: body.PromptTriggers.IntentPatterns,
		})
	}
	return rules, nil
}
