package llm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/llm"
)

var _ = Describe("StripFences", func() {
	It("removes a json-tagged fence", func() {
		out := llm.StripFences("```json\n{\"a\": 1}\n```")
		Expect(out).To(Equal(`{"a": 1}`))
	})

	It("removes a bare fence", func() {
		out := llm.StripFences("```\n{\"a\": 1}\n```")
		Expect(out).To(Equal(`{"a": 1}`))
	})

	It("leaves unfenced text alone", func() {
		out := llm.StripFences("  {\"a\": 1}  ")
		Expect(out).To(Equal(`{"a": 1}`))
	})
})

var _ = Describe("ParseSummaryOutput", func() {
	It("parses structured facts and decisions", func() {
		doc, err := llm.ParseSummaryOutput(`{
			"FACTS": [{"fact": "uses sqlite", "confidence": 0.9}],
			"DECISIONS": [{"decision": "ship it", "rationale": "works"}],
			"OPEN_QUESTIONS": ["what about postgres?"]
		}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Facts).To(HaveLen(1))
		Expect(doc.Facts[0].Fact).To(Equal("uses sqlite"))
		Expect(doc.Facts[0].Confidence).To(Equal(0.9))
		Expect(doc.Decisions[0].Rationale).To(Equal("works"))
		Expect(doc.OpenQuestions).To(ConsistOf("what about postgres?"))
	})

	It("accepts bare-string facts", func() {
		doc, err := llm.ParseSummaryOutput(`{"FACTS": ["plain fact"]}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Facts[0].Fact).To(Equal("plain fact"))
	})

	It("accepts the spaced OPEN QUESTIONS key", func() {
		doc, err := llm.ParseSummaryOutput(`{"OPEN QUESTIONS": ["q1"]}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.OpenQuestions).To(ConsistOf("q1"))
	})

	It("parses fenced output", func() {
		doc, err := llm.ParseSummaryOutput("```json\n{\"FACTS\": [\"f\"]}\n```")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Facts).To(HaveLen(1))
	})

	It("wraps parse failures in MalformedOutputError", func() {
		_, err := llm.ParseSummaryOutput("I could not produce JSON, sorry")

		var malformed *llm.MalformedOutputError
		Expect(err).To(BeAssignableToTypeOf(malformed))
	})
})

var _ = Describe("ParseExtractionOutput", func() {
	It("keeps relations as open maps", func() {
		out, err := llm.ParseExtractionOutput(`{
			"entities": ["api", {"name": "sqlite", "type": "technology"}],
			"relations": [{"source": "api", "target": "sqlite", "type": "USES"}]
		}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Entities).To(HaveLen(2))
		Expect(out.Relations[0]).To(HaveKeyWithValue("source", "api"))
	})

	It("rejects non-JSON output", func() {
		_, err := llm.ParseExtractionOutput("nope")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ParseMergeOutput", func() {
	It("parses the updated summary and conflicts", func() {
		out, err := llm.ParseMergeOutput(`{
			"updated_target_summary": {"FACTS": ["merged fact"]},
			"conflicts": ["disagreement on timeout"]
		}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.UpdatedTargetSummary.Facts[0].Fact).To(Equal("merged fact"))
		Expect(out.Conflicts).To(ConsistOf("disagreement on timeout"))
	})

	It("rejects a document missing updated_target_summary", func() {
		_, err := llm.ParseMergeOutput(`{"conflicts": []}`)

		var malformed *llm.MalformedOutputError
		Expect(err).To(BeAssignableToTypeOf(malformed))
	})
})
