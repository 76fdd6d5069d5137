package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period        string            `json:"period"`
	EventCounts   map[EventType]int `json:"event_counts"`
	CardsCreated  int               `json:"cards_created"`
	CardsDeleted  int               `json:"cards_deleted"`
	NetLiveCards  int               `json:"net_live_cards"`
	CreatesByKind map[string]int    `json:"creates_by_kind"`
	MovesPerSlot  map[string]int    `json:"moves_per_slot"`
	RecipeRuns    map[string]int    `json:"recipe_runs"`
}

// CalculateStats computes lifecycle stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:        since.Format("2006-01-02"),
		EventCounts:   make(map[EventType]int),
		CreatesByKind: make(map[string]int),
		MovesPerSlot:  make(map[string]int),
		RecipeRuns:    make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventCardCreated:
			stats.CardsCreated++
			if kind, ok := metadata["kind"].(string); ok {
				stats.CreatesByKind[kind]++
			}
		case EventCardDeleted:
			stats.CardsDeleted++
		case EventCardMoved:
			if slot, ok := metadata["slot"].(string); ok {
				stats.MovesPerSlot[slot]++
			}
		case EventRecipeMatched:
			if id, ok := metadata["recipe_id"].(string); ok {
				stats.RecipeRuns[id]++
			}
		}
	}

	stats.NetLiveCards = stats.CardsCreated - stats.CardsDeleted

	return stats, nil
}
