package auth

import "log/slog"

// Observer receives token lifecycle transitions. Implementations must be
// safe for concurrent use. The zero observer used by default discards
// everything, so the SDK never writes diagnostics on its own.
type Observer interface {
	// GrantAttempt fires before a request to the token endpoint.
	GrantAttempt(grantType string)
	// GrantSuccess fires after the token endpoint returns a new record.
	GrantSuccess(grantType string)
	// RefreshFailure fires when a refresh grant fails; the failure is
	// recovered locally, so this is the only place it becomes visible.
	RefreshFailure(err error)
	// Fallback fires when resolution moves to the next acquisition path.
	Fallback(reason string)
}

// NopObserver discards all transitions.
type NopObserver struct{}

func (NopObserver) GrantAttempt(string)  {}
func (NopObserver) GrantSuccess(string)  {}
func (NopObserver) RefreshFailure(error) {}
func (NopObserver) Fallback(string)      {}

// LogObserver writes lifecycle transitions to a slog.Logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an observer logging at debug level for grant
// traffic and warn level for refresh failures.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) GrantAttempt(grantType string) {
	o.logger.Debug("token grant attempt", "grant_type", grantType)
}

func (o *LogObserver) GrantSuccess(grantType string) {
	o.logger.Debug("token grant succeeded", "grant_type", grantType)
}

func (o *LogObserver) RefreshFailure(err error) {
	o.logger.Warn("token refresh failed, requesting new token", "error", err)
}

func (o *LogObserver) Fallback(reason string) {
	o.logger.Debug("token resolution fallback", "reason", reason)
}
