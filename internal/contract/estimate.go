package contract

import "github.com/avelarde/planlevel/internal/app"

type EstimateRequest = app.EstimateRequest

type EstimateResponse = app.EstimateResponse

type TaskEstimate = app.TaskEstimate

type EstimateErrorCode = app.EstimateErrorCode

const (
	EstimateErrProjectNotFound EstimateErrorCode = app.EstimateErrProjectNotFound
	EstimateErrTaskNotFound    EstimateErrorCode = app.EstimateErrTaskNotFound
	EstimateErrInternal        EstimateErrorCode = app.EstimateErrInternal
)

type EstimateError = app.EstimateError
