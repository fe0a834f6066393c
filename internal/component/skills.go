package component

import (
	"fmt"

	"github.com/clawlint/clawlint/internal/defs"
	"github.com/clawlint/clawlint/internal/frontmatter"
	"github.com/clawlint/clawlint/internal/report"
	"github.com/clawlint/clawlint/internal/tree"
)

// skillRequiredKeys must be present with non-empty values in a skill's
// metadata block.
var skillRequiredKeys = []string{"name", "description"}

// ValidateSkills checks every skill directory in the snapshot. An
// absent skills directory is optional, not an error: the result is
// marked Absent and earns a passed finding.
func (v *Validator) ValidateSkills(snap *tree.Snapshot) *report.Result {
	result := report.NewResult()

	if snap.SkillsAbsent {
		result.Absent = true
		result.AddPass("skills: directory absent (optional)")
		return result
	}

	for _, skill := range snap.Skills {
		v.validateSkill(skill, result)
	}
	if len(snap.Skills) == 0 {
		result.AddPass("skills: no skill directories to check")
	}

	v.logger.Debug("skills validated", "count", len(snap.Skills), "warnings", len(result.Warnings))
	return result
}

func (v *Validator) validateSkill(skill tree.Skill, result *report.Result) {
	if !skill.HasEntry {
		result.AddError(CodeSkillFileMissing, skill.Dir,
			fmt.Sprintf("skill %q has no %s", skill.Name, defs.SkillFile))
		return
	}

	block, body, _ := frontmatter.Parse(skill.Entry.Content)
	if block == nil {
		result.AddWarning(CodeSkillFrontmatter, skill.Entry.Path,
			fmt.Sprintf("skill %q has no metadata block", skill.Name))
	} else {
		for _, key := range skillRequiredKeys {
			if !block.Has(key) {
				result.AddWarning(CodeSkillFrontmatter, skill.Entry.Path,
					fmt.Sprintf("skill %q metadata is missing %q", skill.Name, key))
			}
		}
	}

	if words := countWords(body); words > v.wordBudget {
		result.AddWarning(CodeSkillTooLong, skill.Entry.Path, fmt.Sprintf(
			"skill %q body is %d words (budget %d)\n"+
				"Either move detailed sections into a sibling %s/ directory,\n"+
				"or trim redundant content without losing meaning.",
			skill.Name, words, v.wordBudget, defs.ReferencesDir))
		if !skill.HasReferences {
			result.AddWarning(CodeNoReferences, skill.Dir,
				fmt.Sprintf("skill %q has no %s/ directory to hold the overflow",
					skill.Name, defs.ReferencesDir))
		}
	}

	// Warnings are advisory; a skill with its entry file in place still
	// passes.
	result.AddPass(fmt.Sprintf("skill %q structurally sound", skill.Name))
}
