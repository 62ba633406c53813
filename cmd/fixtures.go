package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"deliveryrates/internal/core/application/usecases/commands"
	"deliveryrates/internal/core/domain/model/event"

	jsoniter "github.com/json-iterator/go"
)

var seedJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// SeedEvent is one delivery event of a seed fixture file.
//
//	[{"orderId":1,"deliveryId":1,"kind":"Entrega","status":"PENDING","timestamp":"2025-09-06T15:16:00Z"}]
type SeedEvent struct {
	OrderID    int64     `json:"orderId"`
	DeliveryID int64     `json:"deliveryId"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// Command converts the fixture entry to a create command.
func (e SeedEvent) Command() (commands.CreateDeliveryEventCommand, error) {
	status, err := event.ParseStatus(e.Status)
	if err != nil {
		return commands.CreateDeliveryEventCommand{}, err
	}
	return commands.NewCreateDeliveryEventCommand(e.OrderID, e.DeliveryID, e.Kind, status, e.Timestamp)
}

// DefaultSeedEvents returns the built-in demo data: delivery (1,1) delivered
// after two minutes and delivery (1,2) cancelled after four.
func DefaultSeedEvents() []SeedEvent {
	at := func(value string) time.Time {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			panic(err)
		}
		return t
	}

	return []SeedEvent{
		{OrderID: 1, DeliveryID: 1, Kind: "Entrega", Status: "PENDING", Timestamp: at("2025-09-06T15:16:00Z")},
		{OrderID: 1, DeliveryID: 2, Kind: "Entrega", Status: "PENDING", Timestamp: at("2025-09-06T15:16:00Z")},
		{OrderID: 1, DeliveryID: 1, Kind: "Entrega", Status: "DELIVERED", Timestamp: at("2025-09-06T15:18:00Z")},
		{OrderID: 1, DeliveryID: 2, Kind: "Entrega", Status: "CANCELLED", Timestamp: at("2025-09-06T15:20:00Z")},
	}
}

// LoadSeedEvents reads a JSON array of seed events from path.
func LoadSeedEvents(path string) ([]SeedEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	events, err := DecodeSeedEvents(f)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return events, nil
}

// DecodeSeedEvents decodes a JSON array of seed events.
func DecodeSeedEvents(r io.Reader) ([]SeedEvent, error) {
	var events []SeedEvent
	if err := seedJSON.NewDecoder(r).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}
