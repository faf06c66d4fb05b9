package customer

import "fmt"

// OperationResult is the outcome contract every use case returns: either a
// success carrying data, or a failure carrying an error message. The two are
// mutually exclusive.
type OperationResult struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func Succeed(data any) OperationResult {
	return OperationResult{Success: true, Data: data}
}

func Fail(message string) OperationResult {
	return OperationResult{Success: false, Error: &message}
}

func Failf(format string, args ...any) OperationResult {
	return Fail(fmt.Sprintf(format, args...))
}
