package core

import (
	"testing"
	"time"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "mens-casual-premium-slim-fit-t-shirt",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "a much longer slug that should still hash consistently every time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestProduct_EmbeddingText(t *testing.T) {
	p := Product{
		Name:        "Fjallraven Backpack",
		Category:    "men's clothing",
		Description: "Fits 15 inch laptops",
	}

	want := "Fjallraven Backpack\nmen's clothing\nFits 15 inch laptops"
	if got := p.EmbeddingText(); got != want {
		t.Errorf("EmbeddingText() = %q, want %q", got, want)
	}
}

func TestProduct_Deleted(t *testing.T) {
	p := Product{}
	if p.Deleted() {
		t.Errorf("Deleted() = true for product without deletion timestamp")
	}

	p.DeletedAt = time.Now().UTC()
	if !p.Deleted() {
		t.Errorf("Deleted() = false for product with deletion timestamp")
	}
}
