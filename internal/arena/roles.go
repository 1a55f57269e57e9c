package arena

import (
	"fmt"

	"github.com/AliZeynalov/decision-arena/internal/models"
)

// Role names one of the three fixed arena personas.
type Role string

const (
	RoleBuilder    Role = "Builder"
	RoleChallenger Role = "Challenger"
	RoleJudge      Role = "Judge"
)

// systemRules is prepended to every agent conversation.
const systemRules = `You are a high-signal decision assistant.
Be concrete, pragmatic, and action-oriented.
Avoid generic motivation. Avoid fluff.
If info is missing, state assumptions explicitly.
Format output in Markdown with clear headings and bullets.
`

// rolePrompts maps each persona to its fixed instruction template. The table
// is configuration data: stateless and constant across runs.
var rolePrompts = map[Role]string{
	RoleBuilder: `Create the strongest possible plan and recommendation.
- Explain why this path could win.
- Provide a simple step-by-step approach.
- Include assumptions and what must be true for success.
`,
	RoleChallenger: `Attack the plan like a critical reviewer.
- Identify risks, hidden constraints, and failure modes.
- List what is missing/uncertain.
- Provide mitigations and "stop doing" advice.
`,
	RoleJudge: `Synthesize Builder + Challenger and decide.
Output MUST include:
1) Final recommendation (1-2 lines)
2) Key assumptions (bullets)
3) 7-day action plan (day-wise bullets)
4) Metrics to track (3-6 metrics)
5) If-then guardrails (e.g., 'If X by Day 3 not true, then do Y')
`,
}

// problemContext renders the shared user message carrying the decision, risk
// preference, and depth.
func problemContext(cfg models.RunConfig) string {
	return fmt.Sprintf("Decision/Goal:\n%s\n\nRisk preference: %s\nDepth: %d/5", cfg.Problem, cfg.Risk, cfg.Depth)
}

// agentMessages builds the conversation for Builder or Challenger: system
// rules, then the persona instructions, then the problem context.
func agentMessages(role Role, cfg models.RunConfig) []models.Message {
	return []models.Message{
		models.SystemMessage(systemRules),
		models.SystemMessage(fmt.Sprintf("You are Agent: %s.\n%s", role, rolePrompts[role])),
		models.UserMessage(problemContext(cfg)),
	}
}

// judgeMessages builds the Judge conversation, which additionally embeds the
// full Builder and Challenger outputs as layered user context.
func judgeMessages(cfg models.RunConfig, builderText, challengerText string) []models.Message {
	return []models.Message{
		models.SystemMessage(systemRules),
		models.SystemMessage(fmt.Sprintf("You are Agent: %s.\n%s", RoleJudge, rolePrompts[RoleJudge])),
		models.UserMessage(problemContext(cfg)),
		models.UserMessage("Builder Output:\n" + builderText),
		models.UserMessage("Challenger Output:\n" + challengerText),
	}
}
