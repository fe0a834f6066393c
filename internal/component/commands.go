package component

import (
	"fmt"
	"strings"

	"github.com/clawlint/clawlint/internal/frontmatter"
	"github.com/clawlint/clawlint/internal/report"
	"github.com/clawlint/clawlint/internal/tree"
)

// ValidateCommands checks every command document in the snapshot. An
// absent commands directory is optional. Commands only require a
// description: their name is the file name.
func (v *Validator) ValidateCommands(snap *tree.Snapshot) *report.Result {
	result := report.NewResult()

	if snap.CommandsAbsent {
		result.Absent = true
		result.AddPass("commands: directory absent (optional)")
		return result
	}

	skillNames := snap.SkillNames()
	for _, cmd := range snap.Commands {
		v.validateCommand(cmd, skillNames, result)
	}
	if len(snap.Commands) == 0 {
		result.AddPass("commands: no command documents to check")
	}

	v.logger.Debug("commands validated", "count", len(snap.Commands), "warnings", len(result.Warnings))
	return result
}

func (v *Validator) validateCommand(cmd tree.File, skillNames []string, result *report.Result) {
	name := stem(cmd.Path)

	block, body, _ := frontmatter.Parse(cmd.Content)
	if block == nil {
		result.AddWarning(CodeSkillFrontmatter, cmd.Path,
			fmt.Sprintf("command %q has no metadata block", name))
	} else if !block.Has("description") {
		result.AddWarning(CodeSkillFrontmatter, cmd.Path,
			fmt.Sprintf("command %q metadata is missing %q", name, "description"))
	}

	// A command that names sibling skills in its prose should load them
	// through an invocation, same as an agent's declared skills.
	var mentioned []string
	for _, skill := range skillNames {
		if strings.Contains(cmd.Content, skill) {
			mentioned = append(mentioned, skill)
		}
	}
	if len(mentioned) > 0 && !hasSkillInvocation(body) {
		result.AddWarningHint(CodeSkillsNotInvoked, cmd.Path,
			fmt.Sprintf("command %q mentions skills (%s) but never invokes one",
				name, strings.Join(mentioned, ", ")),
			`If intentional, state so in the body; if accidental, add a Skill("plugin:name") call.`)
	}

	v.checkStagedWorkflow("command", name, cmd.Path, body, result)

	result.AddPass(fmt.Sprintf("command %q structurally sound", name))
}
