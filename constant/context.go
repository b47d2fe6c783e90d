package constant

type ContextKey string

// SessionIDKey carries the request's session id through the context.
const SessionIDKey ContextKey = "session_id"
