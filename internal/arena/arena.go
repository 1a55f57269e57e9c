// Package arena runs the three-agent decision workflow: Builder and
// Challenger argue the problem independently, then Judge synthesizes both
// into a final recommendation.
package arena

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"

	"github.com/AliZeynalov/decision-arena/internal/models"
)

// Dispatcher obtains one completion, handling model fallback internally.
// *provider.Client is the production implementation.
type Dispatcher interface {
	RobustInvoke(ctx context.Context, messages []models.Message, temperature float64, maxTokens int) (models.CallResult, error)
}

// Orchestrator drives one arena run end to end.
type Orchestrator struct {
	dispatcher Dispatcher
}

// New builds an orchestrator over the given dispatcher.
func New(d Dispatcher) *Orchestrator {
	return &Orchestrator{dispatcher: d}
}

// Run executes the full workflow and returns the composed markdown report and
// a one-line metadata string. A blank problem short-circuits with a
// prompt-for-input report, empty metadata, and no backend calls. Any dispatch
// failure aborts the run; no partial report is returned.
//
// Builder and Challenger have no data dependency on each other and run
// concurrently; Judge starts only after both complete.
func (o *Orchestrator) Run(ctx context.Context, problem string, risk models.RiskMode, depth int) (string, string, error) {
	problem = strings.TrimSpace(problem)
	if problem == "" {
		return PromptForInput, "", nil
	}

	cfg := models.RunConfig{Problem: problem, Risk: risk, Depth: depth}
	temperature := cfg.Temperature()
	maxTokens := cfg.MaxTokens()

	log.WithFields(log.Fields{
		"risk":        string(cfg.Risk),
		"depth":       cfg.Depth,
		"temperature": temperature,
		"max_tokens":  maxTokens,
		"event":       "run_started",
	}).Info("Arena run started")

	var builder, challenger models.CallResult

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		res, err := o.invokeAgent(ctx, RoleBuilder, cfg, temperature, maxTokens)
		if err != nil {
			return err
		}
		builder = res
		return nil
	})
	p.Go(func(ctx context.Context) error {
		res, err := o.invokeAgent(ctx, RoleChallenger, cfg, temperature, maxTokens)
		if err != nil {
			return err
		}
		challenger = res
		return nil
	})
	if err := p.Wait(); err != nil {
		return "", "", err
	}

	judge, err := o.dispatcher.RobustInvoke(ctx, judgeMessages(cfg, builder.Text, challenger.Text), temperature, maxTokens)
	if err != nil {
		return "", "", err
	}

	log.WithFields(log.Fields{
		"builder_model":    builder.Model,
		"challenger_model": challenger.Model,
		"judge_model":      judge.Model,
		"judge_latency_ms": judge.Latency.Milliseconds(),
		"event":            "run_completed",
	}).Info("Arena run completed")

	report := composeReport(builder.Text, challenger.Text, judge.Text)
	meta := composeMeta(builder.Model, challenger.Model, judge.Model, judge.Latency)
	return report, meta, nil
}

// invokeAgent dispatches one role-scoped call and trims the returned text.
func (o *Orchestrator) invokeAgent(ctx context.Context, role Role, cfg models.RunConfig, temperature float64, maxTokens int) (models.CallResult, error) {
	res, err := o.dispatcher.RobustInvoke(ctx, agentMessages(role, cfg), temperature, maxTokens)
	if err != nil {
		return models.CallResult{}, err
	}
	res.Text = strings.TrimSpace(res.Text)

	log.WithFields(log.Fields{
		"role":       string(role),
		"model":      res.Model,
		"latency_ms": res.Latency.Milliseconds(),
		"event":      "agent_completed",
	}).Info("Agent completed")

	return res, nil
}
