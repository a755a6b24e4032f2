package models

import "fmt"

// Outcome is the tagged result of one task pipeline run. Failures are values,
// never panics: a handler can always serialize an Outcome directly.
//
// When Success is true the Data map is schema-complete for the task — every
// field the consumer expects is present with the right kind, so nothing
// downstream needs to check for missing keys.
type Outcome struct {
	Success bool
	// Data holds the task payload keys, merged into the JSON response next to
	// the success flag.
	Data map[string]any
	// Err is the human-readable failure reason. Set only when Success is false.
	Err string
	// Note is set when the model's output could not be recovered and a
	// deterministic fallback payload was substituted.
	Note string
}

// Succeed builds a successful outcome carrying the given payload.
func Succeed(data map[string]any) Outcome {
	return Outcome{Success: true, Data: data}
}

// Fallback builds a successful outcome whose payload is a deterministic
// substitute for an unrecoverable model response.
func Fallback(data map[string]any, note string) Outcome {
	return Outcome{Success: true, Data: data, Note: note}
}

// Fail builds a failure outcome with a formatted reason.
func Fail(format string, args ...any) Outcome {
	return Outcome{Success: false, Err: fmt.Sprintf(format, args...)}
}

// JSON flattens the outcome into the response shape the API serves:
// {"success": bool, <payload keys>...} or {"success": false, "error": reason}.
// Failures may still carry payload keys, e.g. a raw_response excerpt for
// debugging.
func (o Outcome) JSON() map[string]any {
	resp := map[string]any{"success": o.Success}
	for k, v := range o.Data {
		resp[k] = v
	}
	if !o.Success {
		resp["error"] = o.Err
		return resp
	}
	if o.Note != "" {
		resp["note"] = o.Note
	}
	return resp
}
