package prompt

import "strings"

const deliverable = "Deliverable: Provide a clear, structured response. Think step-by-step."

// Fields is the prompt composer input.
type Fields struct {
	Objective   string
	Audience    string
	Tone        string
	Constraints string
	Context     string
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f Fields) Trimmed() Fields {
	return Fields{
		Objective:   strings.TrimSpace(f.Objective),
		Audience:    strings.TrimSpace(f.Audience),
		Tone:        strings.TrimSpace(f.Tone),
		Constraints: strings.TrimSpace(f.Constraints),
		Context:     strings.TrimSpace(f.Context),
	}
}

// Compose builds the prompt text. Empty fields are skipped; the deliverable
// line is always last.
func Compose(f Fields) string {
	return strings.Join(Lines(f), "\n")
}

// Lines returns the composed prompt split into its logical entries. The
// context entry keeps its embedded newline.
func Lines(f Fields) []string {
	d := f.Trimmed()
	lines := make([]string, 0, 6)
	if d.Objective != "" {
		lines = append(lines, "Objective: "+d.Objective)
	}
	if d.Audience != "" {
		lines = append(lines, "Audience: "+d.Audience)
	}
	if d.Tone != "" {
		lines = append(lines, "Style & Tone: "+d.Tone)
	}
	if d.Constraints != "" {
		lines = append(lines, "Constraints: "+d.Constraints)
	}
	if d.Context != "" {
		lines = append(lines, "Context:\n"+d.Context)
	}
	lines = append(lines, deliverable)
	return lines
}

// Template is a named preset for the composer.
type Template struct {
	Name string
	Fields
}

var templates = []Template{
	{
		Name: "Research Summary",
		Fields: Fields{
			Objective:   "Summarize latest research paper into actionable insights",
			Audience:    "Product managers and engineers",
			Tone:        "analytical",
			Constraints: "300 words max, include 3 bullet points and 2 citations",
			Context:     "Paper title: Example; Key method: Example; Dataset: Example.",
		},
	},
	{
		Name: "Marketing Copy",
		Fields: Fields{
			Objective:   "Write landing page hero copy for an AI feature",
			Audience:    "Startup founders",
			Tone:        "persuasive",
			Constraints: "Two options, <= 30 words each",
			Context:     "Feature: real-time AI agents; Benefit: automate workflows; USP: safe + reliable.",
		},
	},
}

// Templates returns the built-in presets.
func Templates() []Template {
	return append([]Template(nil), templates...)
}

// PickTemplate chooses a preset using rnd, which must return values in [0, 1).
func PickTemplate(rnd func() float64) Template {
	idx := 0
	if rnd != nil {
		idx = int(rnd() * float64(len(templates)))
	}
	if idx < 0 || idx >= len(templates) {
		idx = 0
	}
	return templates[idx]
}
