package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
)

// ResponseParser turns the raw model response into a validated
// AnalysisResult. Malformed JSON rejects the whole batch; a record that
// fails the score invariant is dropped individually unless strictRecords
// is set, in which case any invalid record rejects the batch.
type ResponseParser struct {
	strictRecords bool
	validate      *validator.Validate
}

func NewResponseParser(strictRecords bool) *ResponseParser {
	return &ResponseParser{
		strictRecords: strictRecords,
		validate:      validator.New(),
	}
}

// candidateWire mirrors the schema declared in the prompt. Optional
// numerics come in as optNumber so that floats and numeric strings from
// the model survive decoding; the parser accepts both "experience" (the
// declared name) and "experienceYears".
type candidateWire struct {
	Name            string    `json:"name"`
	Skills          []string  `json:"skills"`
	Experience      optNumber `json:"experience"`
	ExperienceYears optNumber `json:"experienceYears"`
	Education       string    `json:"education"`
	Score           optNumber `json:"score"`
	Role            string    `json:"role"`
	Summary         string    `json:"summary"`
}

func (p *ResponseParser) Parse(raw string) (models.AnalysisResult, error) {
	cleaned := strings.TrimSpace(StripCodeFence(raw))
	if cleaned == "" {
		return nil, &SchemaError{Reason: "empty response"}
	}

	elements, err := coerceToArray(cleaned)
	if err != nil {
		return nil, err
	}

	// An empty array is the model reporting "no candidates found", which
	// is a valid, degenerate outcome rather than a schema failure.
	if len(elements) == 0 {
		return models.AnalysisResult{}, nil
	}

	result := make(models.AnalysisResult, 0, len(elements))
	dropped := 0

	for i, element := range elements {
		record, err := p.parseRecord(element)
		if err != nil {
			if p.strictRecords {
				return nil, &SchemaError{
					Reason: fmt.Sprintf("record %d is invalid", i),
					Err:    err,
				}
			}
			dropped++
			log.Printf("⚠️  Dropping invalid candidate record %d: %v\n", i, err)
			continue
		}
		result = append(result, record)
	}

	if len(result) == 0 {
		return nil, &SchemaError{
			Reason: fmt.Sprintf("no valid candidate records (%d rejected)", dropped),
		}
	}

	return result, nil
}

func (p *ResponseParser) parseRecord(element json.RawMessage) (models.CandidateRecord, error) {
	var wire candidateWire
	if err := json.Unmarshal(element, &wire); err != nil {
		return models.CandidateRecord{}, fmt.Errorf("failed to decode record: %w", err)
	}

	if !wire.Score.set {
		return models.CandidateRecord{}, fmt.Errorf("score is missing")
	}
	if err := p.validate.Var(wire.Score.value, "min=0,max=100"); err != nil {
		return models.CandidateRecord{}, fmt.Errorf("score %v is out of range [0,100]", wire.Score.value)
	}

	record := models.CandidateRecord{
		Name:      wire.Name,
		Skills:    wire.Skills,
		Education: wire.Education,
		Score:     int(math.Round(wire.Score.value)),
		Role:      wire.Role,
		Summary:   wire.Summary,
	}

	experience := wire.Experience
	if !experience.set {
		experience = wire.ExperienceYears
	}
	if experience.set && experience.value >= 0 {
		years := int(math.Round(experience.value))
		record.ExperienceYears = &years
	}

	return record, nil
}

// coerceToArray accepts either a JSON array or a single JSON object (the
// model sometimes answers the single-candidate case with a bare object).
func coerceToArray(text string) ([]json.RawMessage, error) {
	switch text[0] {
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal([]byte(text), &elements); err != nil {
			return nil, &SchemaError{Reason: "malformed JSON array", Err: err}
		}
		return elements, nil
	case '{':
		if !json.Valid([]byte(text)) {
			return nil, &SchemaError{Reason: "malformed JSON object"}
		}
		return []json.RawMessage{json.RawMessage(text)}, nil
	default:
		return nil, &SchemaError{Reason: "response is not a JSON object or array"}
	}
}

// StripCodeFence removes a surrounding markdown code block, with or
// without a language tag. Unfenced input passes through unchanged.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")

	// Drop a language tag on the opening fence line ("json", "JSON", ...)
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine == "" || (len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[\"")) {
			text = text[idx+1:]
		}
	}

	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}

	return strings.TrimSpace(text)
}

// optNumber is a JSON number that may be absent, null, or quoted. The
// model is inconsistent about emitting 85, 85.0 or "85".
type optNumber struct {
	set   bool
	value float64
}

func (n *optNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
		if s == "" {
			return nil
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", string(b))
	}

	n.set = true
	n.value = value
	return nil
}
