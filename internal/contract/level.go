// Package contract re-exports the app layer's request and response types
// under a stable import path for CLI and HTTP consumers.
package contract

import "github.com/avelarde/planlevel/internal/app"

type LevelRequest = app.LevelRequest

func NewLevelRequest(projectID string) LevelRequest {
	return app.NewLevelRequest(projectID)
}

type LevelResponse = app.LevelResponse

type TaskSchedule = app.TaskSchedule

type RoleHours = app.RoleHours

type DayWorkload = app.DayWorkload

type LevelErrorCode = app.LevelErrorCode

const (
	LevelErrProjectNotFound LevelErrorCode = app.LevelErrProjectNotFound
	LevelErrNoTasks         LevelErrorCode = app.LevelErrNoTasks
	LevelErrUnknownRole     LevelErrorCode = app.LevelErrUnknownRole
	LevelErrNoWorkingDays   LevelErrorCode = app.LevelErrNoWorkingDays
	LevelErrInternal        LevelErrorCode = app.LevelErrInternal
)

type LevelError = app.LevelError
