//nolint:revive // types is a standard Go package name pattern
package types

// ResultBundle is the serializable output of one engine evaluation. Field
// names are stable: callers store and replay these bundles.
type ResultBundle struct {
	Checks     []Check `json:"checks"`
	HasBlocker bool    `json:"has_blocker"`
	HasWarning bool    `json:"has_warning"`
	Primary    *Check  `json:"primary_check,omitempty"`
	Secondary  *Check  `json:"secondary_check,omitempty"`
	Display    []Check `json:"display_checks"`
}

// EmptyBundle returns the bundle for an evaluation that produced no checks,
// including the disabled-engine case.
func EmptyBundle() *ResultBundle {
	return &ResultBundle{
		Checks:  []Check{},
		Display: []Check{},
	}
}
