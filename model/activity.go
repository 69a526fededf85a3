package model

type ActivityEventMessage struct {
	SessionId string `json:"session_id"`
	EventId   int    `json:"event_id,omitempty"`
	At        string `json:"at"`
}
