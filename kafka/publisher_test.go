package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func newMockProducer(t *testing.T) *mocks.SyncProducer {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	return mocks.NewSyncProducer(t, config)
}

func TestPublishOrderPlaced(t *testing.T) {
	producer := newMockProducer(t)
	var sent OrderPlacedEvent
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		return json.Unmarshal(val, &sent)
	})

	p := NewPublisherWithProducer(producer)
	p.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	err := p.PublishOrderPlaced(context.Background(), OrderPlacedEvent{
		OrderID:   11,
		Reference: "ref-1",
		UserID:    4,
		TotalQty:  2,
		TotalCost: 40,
		Items:     []OrderEventItem{{ProductID: 1, Qty: 2, Price: 20}},
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := producer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if sent.EventType != EventTypeOrderPlaced {
		t.Errorf("event_type = %q", sent.EventType)
	}
	if sent.EventID == "" {
		t.Error("event id not assigned")
	}
	if sent.OrderID != 11 || sent.UserID != 4 || len(sent.Items) != 1 {
		t.Errorf("unexpected payload: %+v", sent)
	}
	if !sent.Timestamp.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp = %v", sent.Timestamp)
	}
}

func TestPublishOrderPlacedSendFailure(t *testing.T) {
	producer := newMockProducer(t)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer)
	err := p.PublishOrderPlaced(context.Background(), OrderPlacedEvent{OrderID: 1})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("err = %v, want ErrOutOfBrokers", err)
	}
	producer.Close()
}
