package constant

const (
	QueueStreamName = "event_map_activity_stream"
)

const (
	AllWildcard = "activity.>"

	SubjectEventSelected = "activity.event.selected"
	SubjectEventDetails  = "activity.event.details"
	SubjectFiltersReset  = "activity.filters.reset"
)
