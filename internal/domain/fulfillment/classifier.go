package fulfillment

// Bucket is the classification outcome for an order
type Bucket string

const (
	BucketNeedsShipping Bucket = "NEEDS_SHIPPING"
	BucketExcluded      Bucket = "EXCLUDED"
	BucketCompleted     Bucket = "COMPLETED"
	BucketOther         Bucket = "OTHER"
)

// String returns the string representation of the bucket
func (b Bucket) String() string {
	return string(b)
}

// terminalPickingStatuses are fulfillment statuses past the point where
// offering the order for picking again would double-pick it.
var terminalPickingStatuses = newStatusSet([]string{
	StatusPacked,
	StatusShipped,
	StatusDelivered,
})

// Classify maps an order to exactly one bucket using the given rules.
// Both the order status and the fulfillment status are checked against each
// set, in strict precedence order: excluded, then completed, then to-ship.
// Unrecognized statuses land in BucketOther; the function never fails.
func Classify(order *Order, rules Rules) Bucket {
	if order == nil {
		return BucketOther
	}

	excluded := newStatusSet(rules.ExcludedStatuses)
	if excluded.contains(order.Status) || excluded.contains(order.FulfillmentStatus) {
		return BucketExcluded
	}

	completed := newStatusSet(rules.CompletedStatuses)
	if completed.contains(order.Status) || completed.contains(order.FulfillmentStatus) {
		return BucketCompleted
	}

	toShip := newStatusSet(rules.ToShipStatuses)
	if toShip.contains(order.Status) || toShip.contains(order.FulfillmentStatus) {
		return BucketNeedsShipping
	}

	return BucketOther
}

// NeedsPicking narrows BucketNeedsShipping to orders whose fulfillment status
// is not yet terminal for picking, so already packed or shipped orders are not
// offered to the shopper again.
func NeedsPicking(order *Order, rules Rules) bool {
	if Classify(order, rules) != BucketNeedsShipping {
		return false
	}
	return !terminalPickingStatuses.contains(order.FulfillmentStatus)
}

// BucketCounts holds per-bucket order counts for dashboard badges
type BucketCounts struct {
	NeedsShipping int    `json:"needsShipping"`
	NeedsPicking  int    `json:"needsPicking"`
	Excluded      int    `json:"excluded"`
	Completed     int    `json:"completed"`
	Other         int    `json:"other"`
	DisplayText   string `json:"displayText"`
}

// CountBuckets classifies every order and tallies the buckets. Completed
// orders are only counted when the rules opt in via IncludeCompleted; they
// still classify as BucketCompleted either way.
func CountBuckets(orders []*Order, rules Rules) BucketCounts {
	counts := BucketCounts{DisplayText: rules.Label()}
	for _, order := range orders {
		switch Classify(order, rules) {
		case BucketNeedsShipping:
			counts.NeedsShipping++
			if NeedsPicking(order, rules) {
				counts.NeedsPicking++
			}
		case BucketExcluded:
			counts.Excluded++
		case BucketCompleted:
			if rules.IncludeCompleted {
				counts.Completed++
			}
		default:
			counts.Other++
		}
	}
	return counts
}

// FilterNeedsShipping returns the orders classified as BucketNeedsShipping,
// preserving input order.
func FilterNeedsShipping(orders []*Order, rules Rules) []*Order {
	result := make([]*Order, 0, len(orders))
	for _, order := range orders {
		if Classify(order, rules) == BucketNeedsShipping {
			result = append(result, order)
		}
	}
	return result
}

// FilterNeedsPicking returns the orders that still need picking, preserving
// input order.
func FilterNeedsPicking(orders []*Order, rules Rules) []*Order {
	result := make([]*Order, 0, len(orders))
	for _, order := range orders {
		if NeedsPicking(order, rules) {
			result = append(result, order)
		}
	}
	return result
}
