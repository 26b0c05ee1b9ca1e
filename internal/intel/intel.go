// Package intel builds the company-health input fragment from an
// already-fetched HTML page (a news roundup, a company status page). It is
// a caller-side helper: the engine itself never fetches or parses anything,
// it only consumes the finished fragment.
package intel

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/decision-engine/internal/types"
)

// ExtractionError indicates the page could not be parsed at all.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return "intel extraction error: " + e.Message + ": " + e.Cause.Error()
	}
	return "intel extraction error: " + e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

var layoffPhrases = []string{
	"layoff",
	"laid off",
	"workforce reduction",
	"job cuts",
	"restructuring",
}

var freezePhrases = []string{
	"hiring freeze",
	"hiring pause",
	"paused hiring",
	"frozen headcount",
}

var fundingPhrases = []string{
	"down round",
	"bridge financing",
	"running out of runway",
	"cash crunch",
	"missed payroll",
}

// BuildCompanyHealth parses page HTML and derives the health fragment for
// the named company. Only visible text is scanned; script and style content
// is discarded.
func BuildCompanyHealth(htmlContent, company string) (*types.CompanyHealth, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()
	text := strings.ToLower(doc.Find("body").Text())
	if text == "" {
		text = strings.ToLower(doc.Text())
	}

	health := &types.CompanyHealth{Company: company}

	if phrase := containsAny(text, layoffPhrases); phrase != "" {
		health.RecentLayoffs = true
		health.LayoffNote = "page mentions " + phrase
	}
	if containsAny(text, freezePhrases) != "" {
		health.HiringFreeze = true
	}
	if phrase := containsAny(text, fundingPhrases); phrase != "" {
		health.FundingRisk = true
		health.Note = "page mentions " + phrase
	}

	return health, nil
}

func containsAny(text string, phrases []string) string {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return p
		}
	}
	return ""
}
