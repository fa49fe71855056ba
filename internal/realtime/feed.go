package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

// Tables events are announced on. They match the store table names.
const (
	TableAppointments = "appointments"
	TableTransactions = "transactions"
	TableAvailability = "barbers_availabilities"
	TableExceptions   = "barbers_exceptions"
	TableHolidays     = "barbers_holidays"
)

// RuleTables are the schedule configuration tables. A change to any of them
// can reshape any future day, so subscribers treat them alike.
var RuleTables = []string{TableAvailability, TableExceptions, TableHolidays}

// Event is one row-change notification. Table matches the store table name;
// BarberID and Date scope the change so subscribers can refresh narrowly.
type Event struct {
	Table    string `json:"table"`
	BarberID string `json:"barber_id,omitempty"`
	Date     string `json:"date,omitempty"`
}

func channelFor(table string) string {
	return "changes:" + table
}

// Feed publishes and subscribes change notifications over Redis pub/sub. It is
// the dashboard's replacement for the hosted backend's realtime channel: other
// sessions see a write as soon as the owning use case publishes it.
type Feed struct {
	client *redis.Client
}

func NewFeed(redisURL string) (*Feed, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &Feed{client: redis.NewClient(opts)}, nil
}

// Publish is fire-and-forget: a lost notification degrades freshness, never
// correctness, because every read model is fully re-derivable from the store.
func (f *Feed) Publish(ctx context.Context, ev Event) {
	if f == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Println("realtime: marshal event:", err)
		return
	}

	if err := f.client.Publish(ctx, channelFor(ev.Table), payload).Err(); err != nil {
		log.Println("realtime: publish:", err)
	}
}

// Subscribe delivers every event on the table's channel to onChange until the
// returned unsubscribe handle is called. onChange runs on the feed goroutine
// and must be quick; heavy refresh work belongs behind the cache.
func (f *Feed) Subscribe(ctx context.Context, table string, onChange func(Event)) func() {
	if f == nil {
		return func() {}
	}

	sub := f.client.Subscribe(ctx, channelFor(table))

	go func() {
		for msg := range sub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Println("realtime: bad payload:", err)
				continue
			}
			onChange(ev)
		}
	}()

	return func() {
		if err := sub.Close(); err != nil {
			log.Println("realtime: unsubscribe:", err)
		}
	}
}

func (f *Feed) Close() error {
	if f == nil {
		return nil
	}
	return f.client.Close()
}
