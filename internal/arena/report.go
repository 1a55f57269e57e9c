package arena

import (
	"fmt"
	"strings"
	"time"
)

// PromptForInput is returned as the report when the problem is blank.
const PromptForInput = "Please enter a decision/goal to analyze."

// composeReport assembles the final markdown artifact: title, then Builder,
// Challenger, and Judge sections in that fixed order.
func composeReport(builderText, challengerText, judgeText string) string {
	return fmt.Sprintf(`# 🧠 Decision Arena

## 🟢 Builder
%s

---

## 🔴 Challenger
%s

---

## 🟣 Judge (Final)
%s
`, builderText, challengerText, strings.TrimSpace(judgeText))
}

// composeMeta renders the one-line run metadata: the model that served each
// role plus the Judge dispatch latency to two decimal places.
func composeMeta(modelB, modelC, modelJ string, judgeLatency time.Duration) string {
	return fmt.Sprintf("Models used: Builder=%s, Challenger=%s, Judge=%s | Judge latency=%.2fs",
		modelB, modelC, modelJ, judgeLatency.Seconds())
}
