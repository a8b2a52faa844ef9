package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/alorahq/marketplace/internal/kafka"
	"github.com/alorahq/marketplace/internal/orders"
	"github.com/alorahq/marketplace/internal/redisx"
)

// Service consumes order lifecycle events and emits buyer notifications.
// Delivery here is a structured log line; the dedup key keeps redelivered
// messages from notifying twice.
type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// HandleOrderEvent is installed as the consumer handler.
func (s *Service) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}

	// dedup via event id
	if s.Redis != nil {
		dkey := fmt.Sprintf(redisx.KeyDedup, "notifier", env.EventID)
		if seen, _ := redisx.Exists(ctx, s.Redis, dkey); seen {
			return nil
		}
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	switch env.EventType {
	case orders.EventOrderPlaced:
		p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
		if err != nil {
			return err
		}
		slog.Info("order placed",
			"order_id", p.OrderID, "user_id", p.UserID,
			"product_id", p.ProductID, "quantity", p.Quantity,
			"total_price", p.TotalPrice)
	case orders.EventOrderCancelled:
		p, err := kafkax.UnwrapPayload[orders.OrderCancelledPayload](env.Payload)
		if err != nil {
			return err
		}
		slog.Info("order cancelled",
			"order_id", p.OrderID, "product_id", p.ProductID,
			"quantity_restored", p.QuantityRestored)
	case orders.EventOrderStatusChanged:
		p, err := kafkax.UnwrapPayload[orders.OrderStatusChangedPayload](env.Payload)
		if err != nil {
			return err
		}
		slog.Info("order status changed", "order_id", p.OrderID, "status", p.Status)
	default:
		// unknown event types are skipped, not retried
	}
	return nil
}
