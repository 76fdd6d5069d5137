package telemetry

import "time"

type EventType string

const (
	EventCardCreated     EventType = "card_created"
	EventCardDeleted     EventType = "card_deleted"
	EventCardMoved       EventType = "card_moved"
	EventSlotCreated     EventType = "slot_created"
	EventSlotDeleted     EventType = "slot_deleted"
	EventRecipeMatched   EventType = "recipe_matched"
	EventProgressResumed EventType = "progress_resumed"
	EventSaveLoaded      EventType = "save_loaded"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
