package fulfillment

import (
	"sort"

	"github.com/shipdesk/backend/internal/domain/shared"
)

// Rules holds the per-warehouse status rule sets used to classify orders.
// The three sets are disjoint by intent; Conflicts reports overlaps so the
// settings screen can surface the misconfiguration. Classification itself
// resolves overlaps by precedence (excluded > completed > to-ship).
type Rules struct {
	ToShipStatuses    []string `json:"toShipStatuses"`
	ExcludedStatuses  []string `json:"excludedStatuses"`
	CompletedStatuses []string `json:"completedStatuses"`
	DisplayText       string   `json:"displayText"`
	IncludeCompleted  bool     `json:"includeCompleted"`
}

// DefaultRules returns the documented fallback rule set used when a warehouse
// has no fulfillment rules configured.
func DefaultRules() Rules {
	return Rules{
		ToShipStatuses: []string{
			StatusPending,
			StatusProcessing,
			StatusAssigned,
			StatusPicking,
			StatusPacking,
			StatusReadyToShip,
		},
		ExcludedStatuses:  []string{StatusCancelled},
		CompletedStatuses: []string{StatusShipped, StatusDelivered},
		DisplayText:       "to ship",
		IncludeCompleted:  false,
	}
}

// statusSet is a normalized membership set over status codes
type statusSet map[string]struct{}

func newStatusSet(codes []string) statusSet {
	set := make(statusSet, len(codes))
	for _, code := range codes {
		if normalized := NormalizeStatus(code); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

func (s statusSet) contains(code string) bool {
	_, ok := s[NormalizeStatus(code)]
	return ok
}

// InToShip reports whether the code belongs to the to-ship set
func (r Rules) InToShip(code string) bool {
	return newStatusSet(r.ToShipStatuses).contains(code)
}

// InExcluded reports whether the code belongs to the excluded set
func (r Rules) InExcluded(code string) bool {
	return newStatusSet(r.ExcludedStatuses).contains(code)
}

// InCompleted reports whether the code belongs to the completed set
func (r Rules) InCompleted(code string) bool {
	return newStatusSet(r.CompletedStatuses).contains(code)
}

// IsEmpty returns true when no status set is configured at all. Only a fully
// empty rule set falls back to DefaultRules; a partially configured one is
// used as the operator wrote it.
func (r Rules) IsEmpty() bool {
	return len(r.ToShipStatuses) == 0 &&
		len(r.ExcludedStatuses) == 0 &&
		len(r.CompletedStatuses) == 0
}

// Label returns the display text for count badges, defaulting to "to ship"
func (r Rules) Label() string {
	if r.DisplayText == "" {
		return "to ship"
	}
	return r.DisplayText
}

// Conflicts returns the status codes that appear in more than one rule set,
// sorted for stable reporting. A non-empty result is a configuration conflict.
func (r Rules) Conflicts() []string {
	toShip := newStatusSet(r.ToShipStatuses)
	excluded := newStatusSet(r.ExcludedStatuses)
	completed := newStatusSet(r.CompletedStatuses)

	seen := make(map[string]struct{})
	for code := range toShip {
		if excluded.contains(code) || completed.contains(code) {
			seen[code] = struct{}{}
		}
	}
	for code := range excluded {
		if completed.contains(code) {
			seen[code] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	conflicts := make([]string, 0, len(seen))
	for code := range seen {
		conflicts = append(conflicts, code)
	}
	sort.Strings(conflicts)
	return conflicts
}

// Validate returns a domain error when the rule sets overlap
func (r Rules) Validate() error {
	if len(r.Conflicts()) > 0 {
		return shared.NewDomainError("RULE_CONFLICT", "A status appears in more than one rule set")
	}
	return nil
}

// EffectiveRules returns the given rules, or DefaultRules when none are
// configured. This is the single fallback point for ConfigurationGap handling;
// classification never fails on missing rules.
func EffectiveRules(rules *Rules) Rules {
	if rules == nil || rules.IsEmpty() {
		return DefaultRules()
	}
	return *rules
}
