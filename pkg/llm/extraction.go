package llm

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed extraction_schema.json
var extractionSchemaJSON []byte

// ExtractionResult is the structured task the extractor pulled out of an
// email. Optional fields stay zero-valued when the model omits them.
type ExtractionResult struct {
	Title                    string   `json:"title"`
	Description              string   `json:"description,omitempty"`
	TaskType                 string   `json:"task_type,omitempty"`
	EstimatedMinutes         int      `json:"estimated_minutes,omitempty"`
	DueGuessISO              string   `json:"due_guess_iso,omitempty"`
	PriorityScore            float64  `json:"priority_score,omitempty"`
	StakeholderMentions      []string `json:"stakeholder_mentions,omitempty"`
	ImplementationGuess      string   `json:"implementation_guess,omitempty"`
	ImplementationConfidence float64  `json:"implementation_confidence,omitempty"`
	Confidence               float64  `json:"confidence"`
	NeedsReview              bool     `json:"needs_review,omitempty"`
	SuggestedChecklist       []string `json:"suggested_checklist,omitempty"`
}

var (
	extractionSchemaOnce sync.Once
	extractionSchema     *jsonschema.Schema
	extractionSchemaErr  error
)

func compiledExtractionSchema() (*jsonschema.Schema, error) {
	extractionSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(extractionSchemaJSON))
		if err != nil {
			extractionSchemaErr = fmt.Errorf("parse extraction schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("extraction.json", doc); err != nil {
			extractionSchemaErr = fmt.Errorf("add extraction schema: %w", err)
			return
		}
		extractionSchema, extractionSchemaErr = compiler.Compile("extraction.json")
	})
	return extractionSchema, extractionSchemaErr
}

// ParseExtraction decodes and validates the extractor's output. Models wrap
// JSON in markdown fences or add prose around it, so the parser cuts the
// outermost object before decoding.
func ParseExtraction(text string) (*ExtractionResult, error) {
	raw := extractJSONObject(text)
	if raw == "" {
		return nil, fmt.Errorf("extraction output contains no JSON object")
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("extraction output is not valid JSON: %w", err)
	}

	schema, err := compiledExtractionSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("extraction output failed schema validation: %w", err)
	}

	var result ExtractionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("decode extraction output: %w", err)
	}
	result.Title = strings.TrimSpace(result.Title)
	if result.Title == "" {
		return nil, fmt.Errorf("extraction output has an empty title")
	}
	return &result, nil
}

// extractJSONObject returns the substring from the first '{' to the last
// '}', or "" when no object is present.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
