package validation

import (
	"encoding/json"
	"testing"
)

func TestValidateStructAndErrorsToJson(t *testing.T) {
	type Input struct {
		Order []string `validate:"required,min=1,dive,uuid" json:"imageOrder"`
	}

	tests := []struct {
		name        string
		in          Input
		wantErr     bool
		wantJsonMap map[string]string
	}{
		{
			name:    "success",
			in:      Input{Order: []string{"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}},
			wantErr: false,
		},
		{
			name:    "missing list",
			in:      Input{},
			wantErr: true,
			wantJsonMap: map[string]string{
				"imageOrder": "required",
			},
		},
		{
			name:    "empty list",
			in:      Input{Order: []string{}},
			wantErr: true,
			wantJsonMap: map[string]string{
				"imageOrder": "min",
			},
		},
		{
			name:    "non-uuid entry",
			in:      Input{Order: []string{"not-a-uuid"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			// convert and unmarshal for comparison
			js, jerr := ErrorsToJson(err)
			if jerr != nil {
				t.Fatalf("ErrorsToJson() error = %v", jerr)
			}
			var got map[string]string
			if err := json.Unmarshal([]byte(js), &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			for field, tag := range tt.wantJsonMap {
				if got[field] != tag {
					t.Errorf("field %q: got %q, want %q", field, got[field], tag)
				}
			}
		})
	}
}

func TestJsonTagFallback(t *testing.T) {
	type Input struct {
		Named   string `validate:"required" json:"named"`
		Unnamed string `validate:"required"`
	}

	err := ValidateStruct(Input{})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	js, _ := ErrorsToJson(err)

	var got map[string]string
	if err := json.Unmarshal([]byte(js), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["named"] != "required" {
		t.Errorf("named: got %q, want %q", got["named"], "required")
	}
	if got["Unnamed"] != "required" {
		t.Errorf("Unnamed: got %q, want %q", got["Unnamed"], "required")
	}
}
