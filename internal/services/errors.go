package services

import "fmt"

// Stage identifies where in the analysis pipeline a failure originated.
type Stage string

const (
	StageExtracting Stage = "extracting"
	StagePrompting  Stage = "prompting"
	StageInvoking   Stage = "invoking"
	StageValidating Stage = "validating"
)

// ExtractionError means the uploaded buffer was not a parseable PDF.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

type InvocationKind string

const (
	InvocationCredential InvocationKind = "credential"
	InvocationTransport  InvocationKind = "transport"
	InvocationEmpty      InvocationKind = "empty_response"
)

// InvocationError wraps a failure of the external model call.
type InvocationError struct {
	Kind InvocationKind
	Err  error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("model invocation failed (%s): %v", e.Kind, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// SchemaError means the model responded, but no valid candidate records
// could be recovered from the response.
type SchemaError struct {
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid model response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid model response: %s", e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// PipelineError tags a stage failure with the stage it came from. The
// orchestrator wraps every stage error in one of these before returning.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("analysis failed while %s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
