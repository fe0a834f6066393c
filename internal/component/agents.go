package component

import (
	"fmt"
	"strings"

	"github.com/clawlint/clawlint/internal/frontmatter"
	"github.com/clawlint/clawlint/internal/report"
	"github.com/clawlint/clawlint/internal/tree"
)

// agentRequiredKeys must be present with non-empty values in an agent's
// metadata block. The tools field is checked separately with its own
// message: an agent without a declared tool list inherits everything,
// which is almost never intended.
var agentRequiredKeys = []string{"name", "description"}

// ValidateAgents checks every agent document in the snapshot. An absent
// agents directory is optional.
func (v *Validator) ValidateAgents(snap *tree.Snapshot) *report.Result {
	result := report.NewResult()

	if snap.AgentsAbsent {
		result.Absent = true
		result.AddPass("agents: directory absent (optional)")
		return result
	}

	for _, agent := range snap.Agents {
		v.validateAgent(agent, result)
	}
	if len(snap.Agents) == 0 {
		result.AddPass("agents: no agent documents to check")
	}

	v.logger.Debug("agents validated", "count", len(snap.Agents), "warnings", len(result.Warnings))
	return result
}

func (v *Validator) validateAgent(agent tree.File, result *report.Result) {
	name := stem(agent.Path)

	block, body, _ := frontmatter.Parse(agent.Content)
	if block == nil {
		result.AddWarning(CodeAgentFrontmatter, agent.Path,
			fmt.Sprintf("agent %q has no metadata block", name))
	} else {
		for _, key := range agentRequiredKeys {
			if !block.Has(key) {
				result.AddWarning(CodeAgentFrontmatter, agent.Path,
					fmt.Sprintf("agent %q metadata is missing %q", name, key))
			}
		}
		if !block.Has("tools") {
			result.AddWarning(CodeAgentFrontmatter, agent.Path,
				fmt.Sprintf("agent %q declares no tool list; add a %q field naming the tools it may use", name, "tools"))
		}
		v.checkDeclaredSkills(name, agent.Path, block, body, result)
	}

	v.checkStagedWorkflow("agent", name, agent.Path, body, result)

	result.AddPass(fmt.Sprintf("agent %q structurally sound", name))
}

// checkDeclaredSkills warns when a component declares skills in its
// metadata but its body never demonstrates invoking any of them. Either
// resolution is acceptable; the warning exists to force the choice.
func (v *Validator) checkDeclaredSkills(name, path string, block *frontmatter.Block, body string, result *report.Result) {
	declared := block.List("skills")
	if len(declared) == 0 || hasSkillInvocation(body) {
		return
	}
	result.AddWarningHint(CodeSkillsNotInvoked, path,
		fmt.Sprintf("agent %q declares skills (%s) but its body never invokes one",
			name, strings.Join(declared, ", ")),
		`If intentional (skills loaded elsewhere), state so in the body; `+
			`if accidental, remove the declaration or add a Skill("plugin:name") call.`)
}

// checkStagedWorkflow warns when a body reads as a numbered multi-stage
// workflow but loads no skills per stage.
func (v *Validator) checkStagedWorkflow(kind, name, path, body string, result *report.Result) {
	stages := countStages(body)
	if stages < 3 {
		return
	}
	calls := len(skillCallCountExpr.FindAllString(body, -1))
	if calls >= stages/2 {
		return
	}
	result.AddWarning(CodeStagedNoSkillLoad, path, fmt.Sprintf(
		"%s %q is a multi-stage workflow (%d stages) with only %d skill call(s);\n"+
			"load the relevant skill per stage, or move the enforcement into hooks.",
		kind, name, stages, calls))
}
