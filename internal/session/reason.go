package session

// ClearReason says why the key was dropped. It is logged and passed to
// OnClear listeners.
type ClearReason string

const (
	ReasonLogout         ClearReason = "logout"
	ReasonInactivity     ClearReason = "inactivity"
	ReasonAuthLost       ClearReason = "auth_lost"
	ReasonPasswordChange ClearReason = "password_change"
	ReasonShutdown       ClearReason = "shutdown"
)
