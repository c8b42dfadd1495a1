package llm

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/fractalhq/fractal/pkg/node"
)

// ExtractionOutput is the graph-builder's expected document shape.
type ExtractionOutput struct {
	// Entities as emitted by the model. Some models emit bare strings,
	// others {name, type} objects; only the count matters upstream.
	Entities []any `json:"entities"`

	// Relations are kept as open maps; field aliasing (from_entity/source,
	// to_entity/target, relation_type/type) is normalized at the graph
	// service's ingestion boundary, not here.
	Relations []map[string]any `json:"relations"`
}

// MergeOutput is the merge arbiter's expected document shape.
type MergeOutput struct {
	UpdatedTargetSummary node.SummaryDocument `json:"updated_target_summary"`
	Conflicts            []string             `json:"conflicts"`
}

// StripFences removes a surrounding markdown code fence from model output.
// Models are instructed to emit bare JSON but routinely wrap it anyway.
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop the info string ("json") on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseSummaryOutput parses a summarizer response into a summary document.
func ParseSummaryOutput(text string) (*node.SummaryDocument, error) {
	var doc node.SummaryDocument
	if err := json.Unmarshal([]byte(StripFences(text)), &doc); err != nil {
		return nil, &MalformedOutputError{Call: "summary", Err: err}
	}
	return &doc, nil
}

// ParseExtractionOutput parses a graph-builder response.
func ParseExtractionOutput(text string) (*ExtractionOutput, error) {
	var out ExtractionOutput
	if err := json.Unmarshal([]byte(StripFences(text)), &out); err != nil {
		return nil, &MalformedOutputError{Call: "graph extraction", Err: err}
	}
	return &out, nil
}

// ParseMergeOutput parses a merge-arbiter response. A document without an
// updated_target_summary key is rejected: storing an empty summary over the
// target would silently drop its context.
func ParseMergeOutput(text string) (*MergeOutput, error) {
	cleaned := StripFences(text)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &MalformedOutputError{Call: "merge", Err: err}
	}
	if _, ok := probe["updated_target_summary"]; !ok {
		return nil, &MalformedOutputError{Call: "merge", Err: errors.New("missing updated_target_summary")}
	}

	var out MergeOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &MalformedOutputError{Call: "merge", Err: err}
	}
	return &out, nil
}
