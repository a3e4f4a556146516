package generator

import "fmt"

// Model selects the quality/latency trade-off for a generation.
type Model string

const (
	ModelFast        Model = "fast"
	ModelHighQuality Model = "high-quality"
)

// Tone steers the register of the generated Project Folder.
type Tone string

const (
	TonePremium      Tone = "premium"
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneConcise      Tone = "concise"
)

// Request describes one generation. Immutable once sent.
type Request struct {
	LeadText string
	Model    Model
	Tone     Tone
}

// Normalize fills zero-value settings with defaults and rejects unknown
// enum values. The lead text itself is validated by the Agent.
func (r *Request) Normalize() error {
	if r.Model == "" {
		r.Model = ModelFast
	}
	if r.Tone == "" {
		r.Tone = ToneProfessional
	}
	switch r.Model {
	case ModelFast, ModelHighQuality:
	default:
		return fmt.Errorf("unknown model %q", r.Model)
	}
	switch r.Tone {
	case TonePremium, ToneProfessional, ToneFriendly, ToneConcise:
	default:
		return fmt.Errorf("unknown tone %q", r.Tone)
	}
	return nil
}
