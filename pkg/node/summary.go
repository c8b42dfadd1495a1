package node

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Fact is one extracted fact in a summary document.
type Fact struct {
	Fact       string  `json:"fact"`
	SourceNode string  `json:"source_node,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Timestamp  string  `json:"timestamp,omitempty"`
}

// Decision is one confirmed decision in a summary document.
type Decision struct {
	Decision   string  `json:"decision"`
	SourceNode string  `json:"source_node,omitempty"`
	Rationale  string  `json:"rationale,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// UnmarshalJSON accepts both the structured fact object and the legacy form
// where a fact is a bare string.
func (f *Fact) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Fact{Fact: s}
		return nil
	}

	type alias Fact
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = Fact(a)
	return nil
}

// UnmarshalJSON accepts both the structured decision object and the legacy
// bare-string form.
func (d *Decision) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Decision{Decision: s}
		return nil
	}

	type alias Decision
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = Decision(a)
	return nil
}

// SummaryDocument is the structured document produced by the summarizer.
// The uppercase keys mirror the wire format the models are instructed to
// emit.
type SummaryDocument struct {
	Facts         []Fact         `json:"FACTS,omitempty"`
	Decisions     []Decision     `json:"DECISIONS,omitempty"`
	OpenQuestions []string       `json:"OPEN_QUESTIONS,omitempty"`
	Metadata      map[string]any `json:"METADATA,omitempty"`
}

// UnmarshalJSON tolerates the "OPEN QUESTIONS" spelling some model outputs
// use in place of "OPEN_QUESTIONS".
func (s *SummaryDocument) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = SummaryDocument{}

	if v, ok := raw["FACTS"]; ok {
		if err := json.Unmarshal(v, &s.Facts); err != nil {
			return err
		}
	}
	if v, ok := raw["DECISIONS"]; ok {
		if err := json.Unmarshal(v, &s.Decisions); err != nil {
			return err
		}
	}

	questions, ok := raw["OPEN_QUESTIONS"]
	if !ok {
		questions, ok = raw["OPEN QUESTIONS"]
	}
	if ok {
		if err := json.Unmarshal(questions, &s.OpenQuestions); err != nil {
			return err
		}
	}

	if v, ok := raw["METADATA"]; ok {
		if err := json.Unmarshal(v, &s.Metadata); err != nil {
			return err
		}
	}

	return nil
}

// IsEmpty reports whether the document carries no facts, decisions, or open
// questions.
func (s *SummaryDocument) IsEmpty() bool {
	return len(s.Facts) == 0 && len(s.Decisions) == 0 && len(s.OpenQuestions) == 0
}

// FactStrings returns the bare fact texts, capped at limit (0 = no cap).
func (s *SummaryDocument) FactStrings(limit int) []string {
	facts := make([]string, 0, len(s.Facts))
	for _, f := range s.Facts {
		facts = append(facts, f.Fact)
		if limit > 0 && len(facts) == limit {
			break
		}
	}
	return facts
}

// Summary is one versioned summary row for a node. Exactly one summary per
// node has IsLatest set; storing a new summary flips the prior latest in the
// same transaction.
type Summary struct {
	ID                 uuid.UUID       `json:"summary_id"`
	NodeID             uuid.UUID       `json:"node_id"`
	Document           SummaryDocument `json:"summary"`
	GeneratedFromEvent *uuid.UUID      `json:"generated_from_event,omitempty"`
	IsLatest           bool            `json:"is_latest"`
	CreatedAt          time.Time       `json:"created_at"`
}
