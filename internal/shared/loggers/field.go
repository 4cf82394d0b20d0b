package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldDispatchID   = "dispatch_id"
	FieldEventCount   = "event_count"
	FieldGroupCount   = "group_count"
	FieldDroppedCount = "dropped_count"
	FieldLostCount    = "lost_count"
	FieldEndpoint     = "endpoint"
)
