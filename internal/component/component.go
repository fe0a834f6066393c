// Package component validates the individual component documents of a
// plugin tree: skill entry files, agent documents, and command
// documents. All checks here are advisory or per-item recoverable; the
// only error a component can earn is a missing skill entry file.
package component

import (
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// Finding codes for component validation.
const (
	CodeSkillFileMissing  = "E009"
	CodeSkillFrontmatter  = "W029"
	CodeAgentFrontmatter  = "W030"
	CodeSkillTooLong      = "W031"
	CodeNoReferences      = "W032"
	CodeSkillsNotInvoked  = "W033"
	CodeStagedNoSkillLoad = "W034"
)

// DefaultWordBudget is the soft limit on skill body words. A skill entry
// document is meant to be a concise index; detail belongs in its
// references directory.
const DefaultWordBudget = 500

// Validator checks component documents loaded into a tree snapshot.
type Validator struct {
	wordBudget int
	logger     *slog.Logger
}

// NewValidator creates a Validator. A non-positive wordBudget selects
// DefaultWordBudget; logger may be nil.
func NewValidator(wordBudget int, logger *slog.Logger) *Validator {
	if wordBudget <= 0 {
		wordBudget = DefaultWordBudget
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Validator{wordBudget: wordBudget, logger: logger}
}

var (
	fencedCodeExpr = regexp.MustCompile("(?s)```.*?```")
	inlineCodeExpr = regexp.MustCompile("`[^`]+`")

	// skillCallExprs match invocation-shaped tokens: a body that loads a
	// declared skill will contain one of these.
	skillCallExprs = []*regexp.Regexp{
		regexp.MustCompile(`Skill\s*\(`),
		regexp.MustCompile(`(?i)Skill\s+tool`),
		regexp.MustCompile(`(?i)invoke\S*\s+\S*skill`),
		regexp.MustCompile(`(?i)load\S*\s+\S*skill`),
	}

	skillCallCountExpr = regexp.MustCompile(`Skill\s*\(`)

	// stageHeadingExprs match the headings of a numbered multi-stage
	// workflow document.
	stageHeadingExprs = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^#{1,3}\s*(phase|step|stage)\s*\d`),
		regexp.MustCompile(`(?im)^#{1,3}\s*\d+\.\s`),
		regexp.MustCompile(`(?im)^#{1,3}\s*(first|second|third|fourth|fifth)\b`),
	}
)

// countWords counts whitespace-separated words in body after stripping
// fenced blocks and inline code, so code samples do not inflate the
// prose budget.
func countWords(body string) int {
	stripped := fencedCodeExpr.ReplaceAllString(body, "")
	stripped = inlineCodeExpr.ReplaceAllString(stripped, "")
	return len(strings.Fields(stripped))
}

// hasSkillInvocation reports whether body contains any invocation-shaped
// token.
func hasSkillInvocation(body string) bool {
	for _, expr := range skillCallExprs {
		if expr.MatchString(body) {
			return true
		}
	}
	return false
}

// countStages counts numbered stage/phase headings in body.
func countStages(body string) int {
	n := 0
	for _, expr := range stageHeadingExprs {
		n += len(expr.FindAllString(body, -1))
	}
	return n
}

// stem strips a path to its file name without the extension.
func stem(p string) string {
	base := p
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}
