package model

import "testing"

func TestTaskStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusSubmitting, true},
		{TaskStatusAwaiting, true},
		{TaskStatusSucceeded, false},
		{TaskStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTaskStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusSubmitting, false},
		{TaskStatusAwaiting, false},
		{TaskStatusSucceeded, true},
		{TaskStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestWireStatusClassification(t *testing.T) {
	tests := []struct {
		status   string
		success  bool
		failure  bool
		terminal bool
	}{
		{"PENDING", false, false, false},
		{"STARTED", false, false, false},
		{"SUCCESS", true, false, true},
		{"SUCCESSFUL", true, false, true},
		{"FAILURE", false, true, true},
		{"FAILED", false, true, true},
		{"ERROR", false, true, true},
		{"UNKNOWN_STATUS", false, true, true},
		{"SOMETHING_ELSE", false, false, false},
	}

	for _, test := range tests {
		if got := IsSuccessStatus(test.status); got != test.success {
			t.Errorf("IsSuccessStatus(%s) = %v, expected %v", test.status, got, test.success)
		}
		if got := IsFailureStatus(test.status); got != test.failure {
			t.Errorf("IsFailureStatus(%s) = %v, expected %v", test.status, got, test.failure)
		}
		if got := IsTerminalStatus(test.status); got != test.terminal {
			t.Errorf("IsTerminalStatus(%s) = %v, expected %v", test.status, got, test.terminal)
		}
	}
}
