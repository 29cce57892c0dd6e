package calendar

import "time"

type EventType string

const (
	EventTypeLeave   EventType = "LEAVE"
	EventTypeHoliday EventType = "HOLIDAY"
	EventTypeEvent   EventType = "EVENT"
)

// Colors are fixed per source so every client renders them the same way.
const (
	ColorLeave   = "blue"
	ColorHoliday = "red"
	ColorEvent   = "purple"
)

// Event is one entry of the merged calendar feed. IDs are prefixed by
// source (leave-, holiday-, event-) so they stay unique across tables.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Type  EventType `json:"type"`
	Color string    `json:"color"`
}
