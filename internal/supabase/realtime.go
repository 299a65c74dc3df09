package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

const realtimeEventsTable = "realtime_events"

// eventInserter is the part of the Supabase client RealtimeClient needs.
type eventInserter interface {
	insertEvent(row realtimeEventRow) error
}

type postgrestInserter struct {
	client *supabase.Client
}

func (p postgrestInserter) insertEvent(row realtimeEventRow) error {
	_, _, err := p.client.From(realtimeEventsTable).Insert(row, false, "", "minimal", "").Execute()
	return err
}

type realtimeEventRow struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	UserID  string          `json:"user_id"`
	Payload json.RawMessage `json:"payload"`
}

// RealtimeClient publishes to private Supabase Realtime channels. Each event
// is stored in realtime_events; an insert trigger forwards it with
// realtime.send to the row's topic.
type RealtimeClient struct {
	inserter eventInserter
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		inserter: postgrestInserter{client: client},
	}
}

// UserTopic is the private channel a user subscribes to.
func UserTopic(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID.String())
}

func (r *RealtimeClient) PublishEvent(ctx context.Context, topic string, userID uuid.UUID, event string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", event, err)
	}

	row := realtimeEventRow{
		Topic:   topic,
		Event:   event,
		UserID:  userID.String(),
		Payload: body,
	}
	if err := r.inserter.insertEvent(row); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", event, topic, err)
	}
	return nil
}

func (r *RealtimeClient) PublishUserEvent(ctx context.Context, userID uuid.UUID, event string, payload any) error {
	return r.PublishEvent(ctx, UserTopic(userID), userID, event, payload)
}
