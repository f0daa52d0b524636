package fulfillment

// Canonical fulfillment-status codes. Channels may report other codes; the
// classifier treats anything unknown as BucketOther rather than rejecting it.
const (
	StatusPending     = "PENDING"
	StatusProcessing  = "PROCESSING"
	StatusAssigned    = "ASSIGNED"
	StatusPicking     = "PICKING"
	StatusPacking     = "PACKING"
	StatusPacked      = "PACKED"
	StatusReadyToShip = "READY_TO_SHIP"
	StatusShipped     = "SHIPPED"
	StatusDelivered   = "DELIVERED"
	StatusCancelled   = "CANCELLED"
)

// StatusCode describes one canonical status for dashboard rendering.
// Labels and colors are presentation hints only and never drive classification.
type StatusCode struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// StatusCatalog returns the canonical list of fulfillment-status codes with
// their display labels and badge colors, in workflow order.
func StatusCatalog() []StatusCode {
	return []StatusCode{
		{Code: StatusPending, Label: "Pending", Color: "gray"},
		{Code: StatusProcessing, Label: "Processing", Color: "blue"},
		{Code: StatusAssigned, Label: "Assigned", Color: "blue"},
		{Code: StatusPicking, Label: "Picking", Color: "orange"},
		{Code: StatusPacking, Label: "Packing", Color: "orange"},
		{Code: StatusPacked, Label: "Packed", Color: "purple"},
		{Code: StatusReadyToShip, Label: "Ready to ship", Color: "green"},
		{Code: StatusShipped, Label: "Shipped", Color: "green"},
		{Code: StatusDelivered, Label: "Delivered", Color: "green"},
		{Code: StatusCancelled, Label: "Cancelled", Color: "red"},
	}
}
