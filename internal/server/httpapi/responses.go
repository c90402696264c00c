package httpapi

// Response message constants, shared across handlers so clients can match
// on the exact strings.
const (
	msgSuccess          = "success"
	msgDayDeleted       = "success day deleted"
	msgTaskDeleted      = "success task deleted"
	msgDayNotFound      = "day not found"
	msgTaskNotFound     = "task not found"
	msgUnavailable      = "server unavailable"
	msgFailedCreate     = "failed creating / updating"
	msgFailedDeleteDay  = "failed to delete day"
	msgFailedDeleteTask = "failed to delete task"
	msgInvalidJSON      = "invalid json"
	msgBadCredentials   = "Could not validate credentials"
	msgVersionWarning   = "You are using an outdated version, aborted"
)
