package models

import "testing"

func TestOutcomeJSONSuccess(t *testing.T) {
	outcome := Succeed(map[string]any{"results": []any{"a"}})

	resp := outcome.JSON()
	if resp["success"] != true {
		t.Error("Expected success true")
	}
	if _, present := resp["results"]; !present {
		t.Error("Payload keys should be flattened beside the flag")
	}
	if _, present := resp["note"]; present {
		t.Error("No note expected on plain success")
	}
	if _, present := resp["error"]; present {
		t.Error("No error key expected on success")
	}
}

func TestOutcomeJSONFallbackNote(t *testing.T) {
	outcome := Fallback(map[string]any{"questions": []any{}}, "Using fallback questions")

	resp := outcome.JSON()
	if resp["success"] != true {
		t.Error("Fallback outcomes are successful")
	}
	if resp["note"] != "Using fallback questions" {
		t.Errorf("Expected note, got %v", resp["note"])
	}
}

func TestOutcomeJSONFailure(t *testing.T) {
	outcome := Fail("Error parsing AI response: %s", "unexpected end")

	resp := outcome.JSON()
	if resp["success"] != false {
		t.Error("Expected success false")
	}
	if resp["error"] != "Error parsing AI response: unexpected end" {
		t.Errorf("Unexpected error: %v", resp["error"])
	}
}

func TestOutcomeJSONFailureKeepsDiagnostics(t *testing.T) {
	outcome := Fail("Could not parse AI response as JSON: bad token")
	outcome.Data = map[string]any{"raw_response": "garbage{{"}

	resp := outcome.JSON()
	if resp["raw_response"] != "garbage{{" {
		t.Error("Failure payload keys should be preserved")
	}
}
