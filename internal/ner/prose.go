package ner

import (
	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// ProseRecognizer implements Recognizer with the prose NLP library.
// Extraction runs fully offline; no model download is required.
type ProseRecognizer struct{}

// NewProse creates a prose-backed recognizer.
func NewProse() *ProseRecognizer {
	return &ProseRecognizer{}
}

// Entities tags text and returns its named entities. Tokenization
// failures degrade to no entities; extraction must never abort the
// surrounding pipeline.
func (r *ProseRecognizer) Entities(text string) []Entity {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		zap.L().Warn("ner: document parse failed", zap.Error(err))
		return nil
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out
}
