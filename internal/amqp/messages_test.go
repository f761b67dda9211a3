package amqp

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTransactionEventRoundTrip(t *testing.T) {
	event := TransactionEvent{
		ID:        42,
		Action:    ActionUpdated,
		Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got TransactionEvent
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != event.ID || got.Action != event.Action || !got.Timestamp.Equal(event.Timestamp) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestActionConstants(t *testing.T) {
	for _, action := range []string{ActionCreated, ActionUpdated, ActionDeleted} {
		if action == "" {
			t.Fatal("action constant is empty")
		}
	}
	if ActionCreated == ActionUpdated || ActionUpdated == ActionDeleted {
		t.Fatal("action constants must be distinct")
	}
}
