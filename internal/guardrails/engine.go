package guardrails

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/decision-engine/internal/detectors"
	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

// Engine runs the single-pass evaluation pipeline:
//
//	input -> [six detectors] -> validate each check -> aggregate -> assert score -> bundle
//
// Engines are stateless and safe for concurrent use; everything an
// evaluation touches is created fresh per call.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Evaluate runs the full pipeline over one input. When the input's rollout
// flag is off, no detector is invoked and an empty bundle is returned.
// Any guardrail violation aborts the evaluation; no partial result is ever
// returned.
func (e *Engine) Evaluate(ctx context.Context, in *types.EvaluationInput) (*types.ResultBundle, error) {
	if in == nil || !in.Enabled {
		return types.EmptyBundle(), nil
	}

	guard := NewScoreGuard(in)

	// Detectors only ever see by-value copies of what they need. The fit
	// detector gets a copy of the score; nobody gets a handle to the input
	// field the guard asserts on.
	score := in.Score
	var health *types.CompanyHealth
	if in.CompanyHealth != nil {
		health = in.CompanyHealth[in.Company]
	}

	runs := []detectors.Func{
		func() ([]types.Check, error) { return detectors.Eligibility(in.Eligibility) },
		func() ([]types.Check, error) { return detectors.Fit(in.Fit, score) },
		func() ([]types.Check, error) { return detectors.Credibility(in.Credibility) },
		func() ([]types.Check, error) { return detectors.Risk(in.Risk) },
		func() ([]types.Check, error) { return detectors.MarketBias(in.JobText) },
		func() ([]types.Check, error) { return detectors.MarketClimate(in.ResumeText, in.JobText, health) },
	}

	// The detectors have no data dependency on each other; fan out and join
	// on all six before aggregating. Results land in fixed slots so the
	// merge order never depends on scheduling.
	results := make([][]types.Check, len(runs))
	g, _ := errgroup.WithContext(ctx)
	for i, run := range runs {
		g.Go(func() error {
			checks, err := run()
			if err != nil {
				return stampCaller(err, in.Caller)
			}
			results[i] = checks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.Check
	for _, checks := range results {
		all = append(all, checks...)
	}

	for i := range all {
		if err := Validate(&all[i], in.Caller); err != nil {
			return nil, err
		}
	}

	bundle := BuildBundle(all)

	if err := guard.Assert(in, in.Caller); err != nil {
		return nil, err
	}

	return bundle, nil
}

// stampCaller fills the caller label into a violation raised below the
// engine (e.g. at check construction inside a detector).
func stampCaller(err error, caller string) error {
	var violation *policy.GuardrailViolation
	if errors.As(err, &violation) && violation.Caller == "" {
		violation.Caller = caller
	}
	return err
}
