package constant

import "time"

const (
	SessionKey       = "session:%s"
	EventSelectedKey = "event:%d:selected"
	EventDetailsKey  = "event:%d:details"
)

const (
	SessionDefaultTTL = 30 * time.Minute
)
