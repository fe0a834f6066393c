// Package enforcement scans component bodies for enforcement vocabulary
// and decides whether the mandate-strength words it finds are genuine
// policy statements or incidental occurrences, then folds the hits into
// the hookify policy check.
package enforcement

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Hit is one whole-word keyword occurrence together with its
// false-positive classification. Reason is populated only when
// LikelyFalsePositive is true.
type Hit struct {
	Text                string `json:"text"`
	LikelyFalsePositive bool   `json:"likely_false_positive"`
	Reason              string `json:"reason,omitempty"`
}

// Window sizes for the false-positive heuristics.
const (
	placeholderBefore = 1
	placeholderAfter  = 20
	tableCellMargin   = 3
)

const fence = "```"

// Analyze finds every case-insensitive whole-word occurrence of keyword
// in content and classifies each one. Four false-positive heuristics run
// in a fixed order and each may overwrite the previous classification,
// so when several fire the last one's reason wins. That rule is part of
// the contract and pinned by a regression test; see the package tests.
//
// Content and keyword are NFC-normalized before matching so composed and
// decomposed spellings classify identically. Pure function, no side
// effects.
func Analyze(content, keyword string) []Hit {
	if content == "" || keyword == "" {
		return nil
	}
	content = norm.NFC.String(content)
	keyword = norm.NFC.String(keyword)

	wordExpr := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	placeholderExpr := regexp.MustCompile(`(?i)\{[^{}]*` + regexp.QuoteMeta(keyword) + `[^{}]*\}`)
	tableCellExpr := regexp.MustCompile(`(?i)\|[^|]*` + regexp.QuoteMeta(keyword) + `[^|]*\|`)

	var hits []Hit
	for _, loc := range wordExpr.FindAllStringIndex(content, -1) {
		start, end := loc[0], loc[1]
		hit := Hit{Text: content[start:end]}

		if window := clip(content, start-placeholderBefore, end+placeholderAfter); placeholderExpr.MatchString(window) {
			hit.LikelyFalsePositive = true
			hit.Reason = "template placeholder, not prose"
		}
		if window := clip(content, start-tableCellMargin, end+tableCellMargin); tableCellExpr.MatchString(window) {
			hit.LikelyFalsePositive = true
			hit.Reason = "table header cell"
		}
		if strings.Count(content[:start], fence)%2 == 1 {
			hit.LikelyFalsePositive = true
			hit.Reason = "inside fenced code block"
		}
		if start > 0 && content[start-1] == '`' {
			hit.LikelyFalsePositive = true
			hit.Reason = "inline code span"
		}

		hits = append(hits, hit)
	}
	return hits
}

// Tag renders the classification of a hit for human-facing listings.
func (h Hit) Tag() string {
	if h.LikelyFalsePositive {
		return "likely false positive"
	}
	return "looks like a real rule"
}

// String renders the hit as quoted text plus its tag.
func (h Hit) String() string {
	return fmt.Sprintf("%q (%s)", h.Text, h.Tag())
}

func clip(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	return s[from:to]
}
