package orders

import "strconv"

// All order lifecycle events share one topic; consumers discriminate on the
// envelope event type.
const TopicOrderEvents = "marketplace.order.events"

// Partition key = order id, so every event of one order keeps its ordering.
func PartitionKey(orderID int64) []byte {
	return []byte(strconv.FormatInt(orderID, 10))
}
