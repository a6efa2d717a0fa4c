package event

// EventSchemaVersion is stamped on every event. Bump it when a payload changes shape.
const EventSchemaVersion = "1.0"

// errMsgHandlerFailures is returned by Publish when subscribers fail.
const errMsgHandlerFailures = "%d of %d handlers failed for %s: %w"
