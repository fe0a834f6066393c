package scaffold

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// title renders a kebab-case name as a document heading.
func title(name string) string {
	words := strings.ReplaceAll(name, "-", " ")
	return cases.Title(language.English).String(words)
}

// toolList renders tools as an inline YAML list.
func toolList(tools []string) string {
	quoted := make([]string, len(tools))
	for i, t := range tools {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func renderSkillStub(req Request, tools []string) string {
	desc := req.Description
	if desc == "" {
		desc = "TODO: describe what this skill does and when to use it."
	}
	return fmt.Sprintf(`---
name: %s
description: |
  %s
  Include trigger phrases: "phrase1", "phrase2", "phrase3"
allowed-tools: %s
---

# %s

TODO: overview of this skill in two or three sentences.

## When to Use

- Scenario 1
- Scenario 2

## Core Guidelines

TODO: explain the main guidelines.

## Examples

TODO: add a practical example.

---

For detailed patterns: [references/patterns.md](references/patterns.md)
`, req.Name, desc, toolList(tools), title(req.Name))
}

func renderAgentStub(req Request) string {
	desc := req.Description
	if desc == "" {
		desc = "TODO: describe what this agent does and when to delegate to it."
	}
	return fmt.Sprintf(`---
name: %s
description: %s
tools: ["Read", "Grep", "Glob"]
---

# %s

TODO: overview of this agent's responsibility.

## Workflow

1. TODO: first step
2. TODO: second step

## Output

TODO: describe what the agent reports back.
`, req.Name, desc, title(req.Name))
}

func renderCommandStub(req Request) string {
	desc := req.Description
	if desc == "" {
		desc = "TODO: describe what this command does."
	}
	return fmt.Sprintf(`---
name: %s
description: %s
---

# /%s

TODO: overview of this command.

## Usage

TODO: describe arguments and behavior.
`, req.Name, desc, req.Name)
}
