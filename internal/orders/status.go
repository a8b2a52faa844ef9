package orders

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// All non-cancelled states are mutually reachable at the seller's discretion.
// Cancelled is terminal and never appears as a target here: it is reachable
// only through the cancel flow, which also restores stock.
var validNext = map[Status]map[Status]bool{
	StatusPending:    {StatusProcessing: true, StatusShipped: true, StatusDelivered: true},
	StatusProcessing: {StatusPending: true, StatusShipped: true, StatusDelivered: true},
	StatusShipped:    {StatusPending: true, StatusProcessing: true, StatusDelivered: true},
	StatusDelivered:  {StatusPending: true, StatusProcessing: true, StatusShipped: true},
	StatusCancelled:  {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// ParseStatus validates a client-supplied status value.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), true
	}
	return "", false
}
