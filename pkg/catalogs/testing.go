package catalogs

import "testing"

// TestModel creates a test model with sensible defaults.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestModel(t testing.TB, name string) Model {
	t.Helper()
	return Model{
		Name:         name,
		Provider:     "Test Provider",
		Description:  "A test model for unit tests",
		Capabilities: []string{"chat"},
		InputTypes:   []string{"text"},
		OutputTypes:  []string{"text"},
	}
}

// TestCatalog builds a catalog from models and fails the test on error.
func TestCatalog(t testing.TB, models ...Model) *Catalog {
	t.Helper()
	cat, err := New(models)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return cat
}

// SampleModels returns a small catalog covering every filter dimension.
func SampleModels() []Model {
	return []Model{
		{
			Name:         "GPT-4o",
			Provider:     "OpenAI",
			Description:  "Multimodal flagship chat model",
			Capabilities: []string{"chat", "vision", "coding"},
			InputTypes:   []string{"text", "image", "audio"},
			OutputTypes:  []string{"text", "audio"},
			Pricing:      Pricing{Cost: 20, FreeTrial: false, Free: false, Tier: "paid", Details: "$20/month"},
		},
		{
			Name:         "Claude",
			Provider:     "Anthropic",
			Description:  "Assistant focused on writing and analysis",
			Capabilities: []string{"chat", "writing", "coding"},
			InputTypes:   []string{"text", "image"},
			OutputTypes:  []string{"text"},
			Pricing:      Pricing{Cost: 20, Free: true, Tier: "freemium", Details: "Free tier, Pro $20/month"},
		},
		{
			Name:         "Midjourney",
			Provider:     "Midjourney",
			Description:  "Image generation from text prompts",
			Capabilities: []string{"image-generation"},
			InputTypes:   []string{"text", "image"},
			OutputTypes:  []string{"image"},
			Pricing:      Pricing{Cost: 10, FreeTrial: true, Tier: "paid", Details: "From $10/month"},
		},
		{
			Name:         "Whisper",
			Provider:     "OpenAI",
			Description:  "Speech recognition",
			Capabilities: []string{"transcription"},
			InputTypes:   []string{"audio"},
			OutputTypes:  []string{"text"},
			Pricing:      Pricing{Cost: 0, Free: true, Tier: "free", Details: "Open source"},
		},
	}
}
