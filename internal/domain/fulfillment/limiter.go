package fulfillment

import "strconv"

// LimitMode selects how many orders are offered to a single picking run
type LimitMode string

const (
	LimitModeAll    LimitMode = "all"
	LimitModeFixed  LimitMode = "fixed"
	LimitModeCustom LimitMode = "custom"
)

// LimiterConfig is the operator-chosen cap for a picking run.
// A non-positive count behaves as LimitModeAll regardless of mode.
type LimiterConfig struct {
	Mode  LimitMode `json:"mode"`
	Count int       `json:"count"`
}

// AllOrders returns a limiter config that applies no cap
func AllOrders() LimiterConfig {
	return LimiterConfig{Mode: LimitModeAll}
}

// FixedLimit returns a limiter config capping at one of the preset counts.
// Non-positive counts degrade to AllOrders.
func FixedLimit(n int) LimiterConfig {
	if n <= 0 {
		return AllOrders()
	}
	return LimiterConfig{Mode: LimitModeFixed, Count: n}
}

// CustomLimit parses an operator-typed count. Non-numeric or non-positive
// input degrades to AllOrders rather than failing.
func CustomLimit(raw string) LimiterConfig {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return AllOrders()
	}
	return LimiterConfig{Mode: LimitModeCustom, Count: n}
}

// Effective returns the cap to apply, or 0 for unlimited
func (c LimiterConfig) Effective() int {
	if c.Mode == LimitModeAll || c.Count <= 0 {
		return 0
	}
	return c.Count
}

// LimitResult carries the capped sequence plus the counts the dashboard
// badge needs ("limited to X of Y").
type LimitResult struct {
	Capped      []*Order
	TotalCount  int
	CappedCount int
}

// Limit applies the cap to an ordered sequence of orders. The capped result
// is always a prefix of the input in original order, so repeated calls with
// the same inputs yield an identical selection.
func Limit(orders []*Order, config LimiterConfig) LimitResult {
	result := LimitResult{
		Capped:     orders,
		TotalCount: len(orders),
	}

	if max := config.Effective(); max > 0 && max < len(orders) {
		result.Capped = orders[:max]
	}
	result.CappedCount = len(result.Capped)
	return result
}
