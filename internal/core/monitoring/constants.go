package monitoring

const (
	Namespace           = "payout"
	SubsystemOperations = "operations"
	SubsystemStorage    = "storage"
	SubsystemCache      = "cache"
)

const (
	LabelSuccess   = "success"
	LabelReason    = "reason"
	LabelOperation = "operation"
	LabelErrorKind = "error_kind"
	LabelStorage   = "storage"
	LabelMethod    = "method"
)
