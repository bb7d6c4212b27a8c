package platform

import "testing"

func TestParseShareLink(t *testing.T) {
	encoded, decoded, err := ParseShareLink("linksaver://add?url=https%3A%2F%2Fx.test%2Fp")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if encoded != "https%3A%2F%2Fx.test%2Fp" {
		t.Errorf("Expected raw encoded value preserved, got %q", encoded)
	}
	if decoded != "https://x.test/p" {
		t.Errorf("Expected single-pass decode, got %q", decoded)
	}
}

func TestParseShareLink_DecodesExactlyOnce(t *testing.T) {
	// Double-encoded input must come out single-encoded, not fully decoded
	_, decoded, err := ParseShareLink("linksaver://add?url=https%253A%252F%252Fx.test%252Fp")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if decoded != "https%3A%2F%2Fx.test%2Fp" {
		t.Errorf("Expected one decoding pass, got %q", decoded)
	}
}

func TestParseShareLink_MissingParam(t *testing.T) {
	if _, _, err := ParseShareLink("linksaver://add?link=x"); err == nil {
		t.Error("Expected error for missing url parameter")
	}
	if _, _, err := ParseShareLink("linksaver://add"); err == nil {
		t.Error("Expected error for empty query")
	}
}

func TestParseShareLink_OtherParams(t *testing.T) {
	_, decoded, err := ParseShareLink("linksaver://add?src=share&url=https%3A%2F%2Fa.b%2Fc&x=1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if decoded != "https://a.b/c" {
		t.Errorf("Expected url parameter picked out, got %q", decoded)
	}
}

func TestTaskStatusURL(t *testing.T) {
	tests := []struct {
		base     string
		taskID   string
		expected string
	}{
		{"https://api.example.com", "t1", "wss://api.example.com/ws/task_status/t1"},
		{"http://localhost:8000/", "t2", "ws://localhost:8000/ws/task_status/t2"},
		{" https://api.example.com ", "t3", "wss://api.example.com/ws/task_status/t3"},
	}

	for _, test := range tests {
		result, err := TaskStatusURL(test.base, test.taskID)
		if err != nil {
			t.Fatalf("TaskStatusURL(%q) failed: %v", test.base, err)
		}
		if result != test.expected {
			t.Errorf("TaskStatusURL(%q, %q) = %q, expected %q", test.base, test.taskID, result, test.expected)
		}
	}
}

func TestTaskStatusURL_BadScheme(t *testing.T) {
	if _, err := TaskStatusURL("ftp://api.example.com", "t1"); err == nil {
		t.Error("Expected error for non-http scheme")
	}
}
