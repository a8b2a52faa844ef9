package orders

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/alorahq/marketplace/internal/kafka"
	"github.com/alorahq/marketplace/internal/redisx"
)

// Service validates order requests and delegates the atomic stock work to
// the Store. Redis and the producer are optional; the database remains the
// source of truth either way.
type Service struct {
	Store       Store
	Redis       *redis.Client
	Producer    *kafkax.Producer
	ServiceName string
}

func (s *Service) Purchase(ctx context.Context, in PurchaseInput) (int64, error) {
	if in.UserID <= 0 || in.ProductID <= 0 || in.Quantity <= 0 ||
		strings.TrimSpace(in.ShippingAddress) == "" {
		return 0, ErrMissingFields
	}

	o := &Order{
		UserID:             in.UserID,
		ProductID:          in.ProductID,
		ProductName:        in.ProductName,
		ProductDescription: in.ProductDescription,
		MainImage:          in.MainImage,
		Quantity:           in.Quantity,
		TotalPrice:         in.TotalPrice,
		ShippingAddress:    in.ShippingAddress,
		Status:             StatusPending,
	}
	id, err := s.Store.CreatePending(ctx, o)
	if err != nil {
		return 0, err
	}

	s.cacheStatus(ctx, id, StatusPending)
	s.publish(id, EventOrderPlaced, OrderPlacedPayload{
		OrderID:    id,
		UserID:     in.UserID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		TotalPrice: in.TotalPrice,
	})
	return id, nil
}

func (s *Service) CancelOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return ErrOrderNotFound
	}
	o, err := s.Store.Cancel(ctx, orderID)
	if err != nil {
		return err
	}

	s.cacheStatus(ctx, orderID, StatusCancelled)
	s.publish(orderID, EventOrderCancelled, OrderCancelledPayload{
		OrderID:          o.ID,
		ProductID:        o.ProductID,
		QuantityRestored: o.Quantity,
	})
	return nil
}

func (s *Service) UpdateStatus(ctx context.Context, orderID int64, raw string) error {
	to, ok := ParseStatus(raw)
	// Cancelled is only reachable through CancelOrder, which restores stock.
	if !ok || to == StatusCancelled {
		return ErrInvalidStatus
	}
	if err := s.Store.UpdateStatus(ctx, orderID, to); err != nil {
		return err
	}

	s.cacheStatus(ctx, orderID, to)
	s.publish(orderID, EventOrderStatusChanged, OrderStatusChangedPayload{
		OrderID: orderID,
		Status:  to,
	})
	return nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	if userID <= 0 {
		return nil, ErrMissingFields
	}
	return s.Store.ListByUser(ctx, userID)
}

// GetStatus serves the cached status when available and falls back to the
// store, repriming the cache on the way out.
func (s *Service) GetStatus(ctx context.Context, orderID int64) (Status, error) {
	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	if s.Redis != nil {
		if v, err := s.Redis.Get(ctx, key).Result(); err == nil && v != "" {
			return Status(v), nil
		}
	}
	st, err := s.Store.GetStatus(ctx, orderID)
	if err != nil {
		return "", err
	}
	s.cacheStatus(ctx, orderID, st)
	return st, nil
}

func (s *Service) cacheStatus(ctx context.Context, orderID int64, st Status) {
	if s.Redis == nil {
		return
	}
	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	_ = s.Redis.Set(ctx, key, string(st), redisx.TTLStatusCache).Err()
}

func (s *Service) publish(orderID int64, eventType string, payload any) {
	if s.Producer == nil {
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: strconv.FormatInt(orderID, 10),
		Payload:       kafkax.MustMarshal(payload),
	}
	s.Producer.Publish(PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
