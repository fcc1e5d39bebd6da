package cryo

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ResultType classifies the outcome of a checkpoint attempt. Exactly one
// tag is produced per attempt.
type ResultType int

const (
	// Success: the process was checkpointed and, where applicable, restored.
	Success ResultType = iota

	// UnsupportedOperation: checkpointing is not available or not currently
	// permitted.
	UnsupportedOperation

	// InvalidArguments: the configured paths could not be used.
	InvalidArguments

	// SystemCheckpointFailure: the external engine failed to initialize or
	// to take the dump.
	SystemCheckpointFailure

	// RuntimeCheckpointFailure: the runtime failed to prepare for the
	// checkpoint, or cleanup failed before the dump completed.
	RuntimeCheckpointFailure

	// RuntimeRestoreFailure: the runtime failed to resume after the dump,
	// or cleanup failed once the dump had completed.
	RuntimeRestoreFailure
)

var resultTypeNames = map[ResultType]string{
	Success:                  "SUCCESS",
	UnsupportedOperation:     "UNSUPPORTED_OPERATION",
	InvalidArguments:         "INVALID_ARGUMENTS",
	SystemCheckpointFailure:  "SYSTEM_CHECKPOINT_FAILURE",
	RuntimeCheckpointFailure: "RUNTIME_CHECKPOINT_FAILURE",
	RuntimeRestoreFailure:    "RUNTIME_RESTORE_FAILURE",
}

func (t ResultType) String() string {
	if name, ok := resultTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// Result is the outcome of one checkpoint attempt. A non-Success result may
// carry the fault that caused it; a Success result never does. Results are
// built with SuccessResult and FailureResult so that invariant holds by
// construction.
type Result struct {
	resultType ResultType
	cause      error
}

func SuccessResult() Result {
	return Result{resultType: Success}
}

// FailureResult pairs a failure tag with the fault that produced it. The
// cause may be nil when the failure carries no diagnostics beyond its tag.
func FailureResult(resultType ResultType, cause error) Result {
	if resultType == Success {
		return Result{resultType: Success}
	}

	return Result{resultType: resultType, cause: cause}
}

func (r Result) Type() ResultType {
	return r.resultType
}

// Cause returns the captured fault. It is always nil for Success results.
func (r Result) Cause() error {
	return r.cause
}

func (r Result) Succeeded() bool {
	return r.resultType == Success
}

type marshalledResult struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	message := ""
	if r.cause != nil {
		message = r.cause.Error()
	}

	return json.Marshal(marshalledResult{
		Type:    r.resultType.String(),
		Message: message,
	})
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var wire marshalledResult

	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	resultType, err := resultTypeFromName(wire.Type)
	if err != nil {
		return err
	}

	var cause error
	if wire.Message != "" {
		cause = errors.New(wire.Message)
	}

	*r = FailureResult(resultType, cause)
	return nil
}

func resultTypeFromName(name string) (ResultType, error) {
	for resultType, candidate := range resultTypeNames {
		if candidate == name {
			return resultType, nil
		}
	}

	return 0, fmt.Errorf("unknown result type: %q", name)
}
