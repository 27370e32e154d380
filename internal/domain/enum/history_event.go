package enum

// HistoryEvent is the type of a member history journal entry
type HistoryEvent string

const (
	HistoryEventOrder   HistoryEvent = "order"
	HistoryEventPayment HistoryEvent = "payment"
)
