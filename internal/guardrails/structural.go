package guardrails

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
	"github.com/jonathan/decision-engine/schemas"
)

// ValidateStoredCheck validates an already-serialized check, e.g. one
// round-tripped from storage, without re-running any detector. It checks
// schema shape plus closed-enum membership, then runs the same policy rules
// the live pipeline applies. Any failure is the usual violation type.
func ValidateStoredCheck(raw json.RawMessage, caller string) error {
	if err := validateAgainstSchema(schemas.Check, raw, caller); err != nil {
		return err
	}

	var check types.Check
	if err := json.Unmarshal(raw, &check); err != nil {
		return &policy.GuardrailViolation{
			Rule:   policy.RuleMalformedCheck,
			Caller: caller,
			Detail: fmt.Sprintf("stored check does not decode: %v", err),
		}
	}

	// The schema already pins the enum strings; re-assert through the typed
	// sets so schema and code cannot silently diverge.
	if !check.Category.Valid() {
		return &policy.GuardrailViolation{
			Rule:    policy.RuleMalformedCheck,
			Trigger: check.Trigger,
			Caller:  caller,
			Detail:  fmt.Sprintf("unknown category %q", check.Category),
		}
	}
	if !check.Severity.Valid() {
		return &policy.GuardrailViolation{
			Rule:     policy.RuleMalformedCheck,
			Category: check.Category,
			Trigger:  check.Trigger,
			Caller:   caller,
			Detail:   fmt.Sprintf("unknown severity %q", check.Severity),
		}
	}

	return Validate(&check, caller)
}

// ValidateStoredBundle validates a serialized result bundle and every check
// inside it.
func ValidateStoredBundle(raw json.RawMessage, caller string) error {
	if err := validateAgainstSchema(schemas.Bundle, raw, caller); err != nil {
		return err
	}

	var bundle types.ResultBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return &policy.GuardrailViolation{
			Rule:   policy.RuleMalformedCheck,
			Caller: caller,
			Detail: fmt.Sprintf("stored bundle does not decode: %v", err),
		}
	}

	for i := range bundle.Checks {
		if err := Validate(&bundle.Checks[i], caller); err != nil {
			return err
		}
	}
	return nil
}

func validateAgainstSchema(schema string, raw json.RawMessage, caller string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return &policy.GuardrailViolation{
			Rule:   policy.RuleMalformedCheck,
			Caller: caller,
			Detail: fmt.Sprintf("schema validation failed to run: %v", err),
		}
	}
	if result.Valid() {
		return nil
	}

	var details []string
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		details = append(details, field+": "+desc.Description())
	}
	return &policy.GuardrailViolation{
		Rule:   policy.RuleMalformedCheck,
		Caller: caller,
		Detail: strings.Join(details, "; "),
	}
}
