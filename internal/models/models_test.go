package models

import "testing"

func TestIsSupported(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"gpt-4", true},
		{"gpt-3.5-turbo", true},
		{"gpt-4-vision-preview", true},
		{"dall-e-3", false},
		{"whisper-1", false},
		{"text-embedding-ada-002", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSupported(tt.id); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestContextLength(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"gpt-4-32k", 32768},
		{"gpt-4-32k-0613", 32768},
		{"gpt-4o", 128000},
		{"gpt-4", 8192},
		{"gpt-4-unknown-variant", 8192},
	}

	for _, tt := range tests {
		if got := ContextLength(tt.id); got != tt.want {
			t.Errorf("ContextLength(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestMaxOutput(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"gpt-4-32k", 32000},
		{"gpt-4-32k-0314", 32000},
		{"gpt-4", 4000},
		{"gpt-3.5-turbo", 4000},
	}

	for _, tt := range tests {
		if got := MaxOutput(tt.id); got != tt.want {
			t.Errorf("MaxOutput(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestSupportsFiles(t *testing.T) {
	if !SupportsFiles("gpt-4-vision-preview") {
		t.Error("gpt-4-vision-preview should support files")
	}
	if SupportsFiles("gpt-4") {
		t.Error("gpt-4 should not support files")
	}
}

func TestFromID(t *testing.T) {
	info := FromID("gpt-4-32k")

	if info.ID != "gpt-4-32k" || info.Name != "gpt-4-32k" {
		t.Errorf("unexpected identity fields: %+v", info)
	}
	if info.Description != "OpenAI Language Model" {
		t.Errorf("Description = %q", info.Description)
	}
	if info.ContextLength != 32768 {
		t.Errorf("ContextLength = %d, want 32768", info.ContextLength)
	}
	if info.SupportsFiles {
		t.Error("gpt-4-32k should not support files")
	}
}

func TestSupported(t *testing.T) {
	ids := []string{"whisper-1", "gpt-4", "dall-e-3", "gpt-3.5-turbo", "gpt-4-vision-preview"}

	infos := Supported(ids)

	if len(infos) != 3 {
		t.Fatalf("expected 3 supported models, got %d", len(infos))
	}

	// Sorted by id
	want := []string{"gpt-3.5-turbo", "gpt-4", "gpt-4-vision-preview"}
	for i, w := range want {
		if infos[i].ID != w {
			t.Errorf("infos[%d].ID = %s, want %s", i, infos[i].ID, w)
		}
	}

	vision := infos[2]
	if !vision.SupportsFiles {
		t.Error("vision model should support files")
	}
}

func TestSupportedEmpty(t *testing.T) {
	if got := Supported([]string{"whisper-1"}); got != nil {
		t.Errorf("expected nil for no supported models, got %v", got)
	}
}
