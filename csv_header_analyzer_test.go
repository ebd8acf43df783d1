package main

import (
	"reflect"
	"testing"
)

func TestAnalyzeHeaders(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		wantHeaders []string
		wantIsData  bool
	}{
		{
			name:        "Dataset headers",
			input:       []string{"Patient_ID", "Bill_Amount", "Diagnosis", "Department", "Region", "Age"},
			wantHeaders: []string{"Patient_ID", "Bill_Amount", "Diagnosis", "Department", "Region", "Age"},
			wantIsData:  false,
		},
		{
			name:        "Numeric data",
			input:       []string{"123", "456", "789", "101"},
			wantHeaders: []string{"123", "456", "789", "101"},
			wantIsData:  true,
		},
		{
			name:        "Date data",
			input:       []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			wantHeaders: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			wantIsData:  true,
		},
		{
			name:        "Duplicate headers",
			input:       []string{"Name", "Name", "Name", "Age"},
			wantHeaders: []string{"Name", "Name_1", "Name_2", "Age"},
			wantIsData:  false,
		},
		{
			name:        "Empty headers",
			input:       []string{"", "", "", ""},
			wantHeaders: []string{"column_1", "column_2", "column_3", "column_4"},
			wantIsData:  true,
		},
		{
			name:        "BOM and spaces",
			input:       []string{"\ufeffBill_Amount", " Age "},
			wantHeaders: []string{"Bill_Amount", "Age"},
			wantIsData:  false,
		},
		{
			name:        "Cyrillic headers are transliterated",
			input:       []string{"Регион", "Возраст"},
			wantHeaders: []string{"Region", "Vozrast"},
			wantIsData:  false,
		},
		{
			name:        "Mixed data with numbers and text",
			input:       []string{"John", "30", "45.5", "2024-01-01"},
			wantHeaders: []string{"John", "30", "45.5", "2024-01-01"},
			wantIsData:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeHeaders(tt.input)

			if got == nil {
				t.Fatal("AnalyzeHeaders returned nil")
			}

			if !reflect.DeepEqual(got.Headers, tt.wantHeaders) {
				t.Errorf("Headers = %v, want %v", got.Headers, tt.wantHeaders)
			}

			if got.LooksLikeRow != tt.wantIsData {
				t.Errorf("LooksLikeRow = %v, want %v", got.LooksLikeRow, tt.wantIsData)
			}
		})
	}
}

func TestAnalyzeHeadersEmpty(t *testing.T) {
	if got := AnalyzeHeaders(nil); got != nil {
		t.Errorf("AnalyzeHeaders(nil) = %v, want nil", got)
	}
}

func TestIsLikelyHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Empty string", "", false},
		{"Simple header", "Diagnosis", true},
		{"Header with underscore", "Bill_Amount", true},
		{"Header with space", "Bill Amount", true},
		{"Number", "123", false},
		{"Float", "1520.75", false},
		{"Date", "2024-01-01", false},
		{"Special characters", "User#Name!", true},
		{"Only special chars", "###", false},
		{"Mixed content", "User123", true},
		{"Rus", "колонка1", true},
		{"Phone", "+1-234-567-8900", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isLikelyHeader(tt.input); got != tt.want {
				t.Errorf("isLikelyHeader(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHeaderKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Bill_Amount", "bill_amount"},
		{"Bill Amount", "bill_amount"},
		{"BILL-AMOUNT", "bill_amount"},
		{" Bill__Amount ", "bill_amount"},
		{"Age", "age"},
		{"Возраст", "vozrast"},
	}

	for _, tt := range tests {
		if got := headerKey(tt.input); got != tt.want {
			t.Errorf("headerKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateHeaders(t *testing.T) {
	got := ValidateHeaders([]string{"a", "a", "a_1", "b"})
	want := []string{"a", "a_1", "a_1_1", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValidateHeaders = %v, want %v", got, want)
	}
}
