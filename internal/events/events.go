package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topics and event types published by this service.
const (
	TopicFareEvents = "fare.events"

	FareQuoted = "fare.quoted.v1"
)

// CloudEvent is the lightweight event envelope shared across services.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent wraps a payload in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		ID:     uuid.NewString(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   raw,
	}, nil
}

// ParseCloudEvent decodes a CloudEvent from raw bytes.
func ParseCloudEvent(b []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(b, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("failed to parse cloud event: %w", err)
	}
	return ce, nil
}

// ParseData decodes the event payload into the given value.
func (ce CloudEvent) ParseData(v interface{}) error {
	return json.Unmarshal(ce.Data, v)
}

// FareQuotedEvent is emitted after every successful fare estimate. Quotes are
// not persisted; this event is the only record that a calculation happened.
type FareQuotedEvent struct {
	QuoteID          uuid.UUID `json:"quote_id"`
	Category         string    `json:"category"`
	OriginLabel      string    `json:"origin_label"`
	DestinationLabel string    `json:"destination_label"`
	DistanceKm       string    `json:"distance_km"`
	DurationText     string    `json:"duration_text"`
	Fare             string    `json:"fare"`
	PassengerCount   int       `json:"passenger_count"`
	DiscountApplied  bool      `json:"discount_applied"`
	OccurredAt       time.Time `json:"occurred_at"`
}
