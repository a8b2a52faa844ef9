package redisx

import "time"

const (
	// Cached JSON of the ten newest listings: catalog:recent
	KeyRecentListings = "catalog:recent"

	// Cached order status string: order_status:{order_id}
	KeyOrderStatus = "order_status:%d"

	// Dedup for event consumers: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLRecentListings = 1 * time.Minute
	TTLStatusCache    = 5 * time.Minute
	TTLDedup          = 48 * time.Hour
)
