package enforcement

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/clawlint/clawlint/internal/report"
	"github.com/clawlint/clawlint/internal/tree"
)

// DefaultKeywords is the enforcement vocabulary scanned by the hookify
// policy check.
var DefaultKeywords = []string{"MUST", "REQUIRED", "CRITICAL"}

// Listing caps for the consolidated hookify warning.
const (
	maxFilesToReport   = 3
	maxHitsPerFile     = 2
	hookifyWarningCode = "W028"
)

// PolicyChecker runs the hookify policy: enforcement vocabulary in
// component bodies must be backed by a hooks configuration file.
type PolicyChecker struct {
	keywords []string
	logger   *slog.Logger
}

// NewPolicyChecker creates a PolicyChecker. A nil keyword list selects
// DefaultKeywords; logger may be nil.
func NewPolicyChecker(keywords []string, logger *slog.Logger) *PolicyChecker {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &PolicyChecker{keywords: keywords, logger: logger}
}

// fileHits pairs a scanned path with the hits found in it.
type fileHits struct {
	path string
	hits []Hit
}

// CheckHookify scans every representative component document for
// enforcement keywords. Hits without a hooks file produce one
// consolidated warning; hits with a hooks file, or no hits at all, each
// produce a passed finding.
func (c *PolicyChecker) CheckHookify(snap *tree.Snapshot) *report.Result {
	result := report.NewResult()

	var affected []fileHits
	totalHits := 0

	for _, file := range snap.RepresentativeFiles() {
		if strings.TrimSpace(file.Content) == "" {
			continue
		}
		var hits []Hit
		for _, keyword := range c.keywords {
			hits = append(hits, Analyze(file.Content, keyword)...)
		}
		if len(hits) > 0 {
			affected = append(affected, fileHits{path: file.Path, hits: hits})
			totalHits += len(hits)
			c.logger.Debug("enforcement keywords found", "file", file.Path, "hits", len(hits))
		}
	}

	switch {
	case totalHits > 0 && !snap.HasHooksFile:
		result.AddWarningHint(hookifyWarningCode, "", c.formatWarning(affected, totalHits),
			"If these are real rules, add a hooks file to enforce them; if not, reword the text.")
	case totalHits > 0:
		result.AddPass(fmt.Sprintf("hookify: %d enforcement keyword hit(s) found, hooks file exists", totalHits))
	default:
		result.AddPass("hookify: no enforcement keywords requiring hooks")
	}

	return result
}

// formatWarning builds the consolidated hookify warning: up to three
// affected files, each with up to two example hits and their
// classification tags, plus an overflow line when more files exist.
func (c *PolicyChecker) formatWarning(affected []fileHits, totalHits int) string {
	sort.Slice(affected, func(i, j int) bool { return affected[i].path < affected[j].path })

	var b strings.Builder
	fmt.Fprintf(&b, "Hookify required: found %d enforcement keyword hit(s) in %d file(s) but no hooks file exists.",
		totalHits, len(affected))
	b.WriteString("\nDocumentation-only enforcement is not enforced at run time.")

	display := len(affected)
	if display > maxFilesToReport {
		display = maxFilesToReport
	}
	for _, fh := range affected[:display] {
		examples := fh.hits
		if len(examples) > maxHitsPerFile {
			examples = examples[:maxHitsPerFile]
		}
		rendered := make([]string, len(examples))
		for i, hit := range examples {
			rendered[i] = hit.String()
		}
		fmt.Fprintf(&b, "\n  %s: %s", fh.path, strings.Join(rendered, ", "))
	}
	if len(affected) > maxFilesToReport {
		fmt.Fprintf(&b, "\n  ... and %d more file(s)", len(affected)-maxFilesToReport)
	}

	return b.String()
}
