package resource

import (
	"errors"
	"fmt"
)

// Messages shown when a fetch fails. The underlying cause is kept in
// State.Err and logged, never displayed.
const (
	MsgTimeseries        = "Failed to fetch timeseries data"
	MsgWorkouts          = "Failed to fetch workouts"
	MsgWorkoutHistory    = "Failed to fetch workout history"
	MsgWorkoutDetail     = "Failed to fetch workout details"
	MsgSleepSessions     = "Failed to fetch sleep sessions"
	MsgActivitySummaries = "Failed to fetch activity summaries"
	MsgSleepSummaries    = "Failed to fetch sleep summaries"
	MsgRecoverySummaries = "Failed to fetch recovery summaries"
	MsgBodySummaries     = "Failed to fetch body summaries"
	MsgProviders         = "Failed to fetch providers"
	MsgConnections       = "Failed to fetch connections"
	MsgSeriesTypes       = "Failed to fetch series types"

	MsgConnect  = "Failed to start provider connection"
	MsgSync     = "Failed to sync data"
	MsgImport   = "Failed to import Apple Health data"
	MsgRegister = "Failed to register with Open Wearables"
)

var (
	ErrNotSignedIn = errors.New("not signed in")
	ErrNoIdentity  = errors.New("identity not resolved")
)

// FetchError is stored in State.Err when a resource fetch fails.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ActionError is returned by Action.Run. Message is safe to show; Err is the
// cause.
type ActionError struct {
	Action  string
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Action, e.Message, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
