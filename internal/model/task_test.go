package model

import (
	"reflect"
	"testing"
)

func TestCleanLabels(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{[]string{"a", "b"}, []string{"a", "b"}},
		{[]string{"a", "", "b"}, []string{"a", "b"}},
		{[]string{"  ", "\t"}, []string{}},
		{nil, []string{}},
	}

	for _, test := range tests {
		result := CleanLabels(test.input)
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("CleanLabels(%v) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestTaskData_Autofill(t *testing.T) {
	data := &TaskData{
		Desc:                  "nice",
		Creator:               "@x",
		R2ImageURL:            "https://img/1.jpg",
		SuggestedWords:        []string{"a", "", "b"},
		DiversificationLabels: []string{"travel", " "},
	}

	af := data.Autofill()
	if af == nil {
		t.Fatal("Expected autofill payload, got nil")
	}
	if af.Notes != "nice" {
		t.Errorf("Expected notes 'nice', got '%s'", af.Notes)
	}
	if af.Creator != "@x" {
		t.Errorf("Expected creator '@x', got '%s'", af.Creator)
	}
	if af.ImageURL != "https://img/1.jpg" {
		t.Errorf("Expected image URL 'https://img/1.jpg', got '%s'", af.ImageURL)
	}
	if !reflect.DeepEqual(af.SuggestedTags, []string{"a", "b"}) {
		t.Errorf("Expected suggested tags [a b], got %v", af.SuggestedTags)
	}
	if !reflect.DeepEqual(af.SuggestedCategories, []string{"travel"}) {
		t.Errorf("Expected suggested categories [travel], got %v", af.SuggestedCategories)
	}
}

func TestTaskData_Autofill_Error(t *testing.T) {
	data := &TaskData{Desc: "whatever", Error: "scrape blocked"}
	if af := data.Autofill(); af != nil {
		t.Errorf("Expected nil autofill for data with error, got %+v", af)
	}

	var missing *TaskData
	if af := missing.Autofill(); af != nil {
		t.Errorf("Expected nil autofill for nil data, got %+v", af)
	}
}

func TestSubmissionTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://instagram.com/p/abc", "instagram.com/p/abc"},
		{"http://x.test/p", "x.test/p"},
		{"  https://x.test/q ", "x.test/q"},
		{"", ""},
	}

	for _, test := range tests {
		task := &SubmissionTask{URL: test.url}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with URL=%q = %q, expected %q", test.url, result, test.expected)
		}
	}
}

func TestItem_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		item     Item
		expected string
	}{
		{Item{Notes: "coffee place", Creator: "@x"}, "coffee place"},
		{Item{Creator: "@x", SourceURL: "https://x.test/p"}, "@x"},
		{Item{SourceURL: "https://x.test/p"}, "https://x.test/p"},
	}

	for _, test := range tests {
		result := test.item.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() = %q, expected %q", result, test.expected)
		}
	}
}
