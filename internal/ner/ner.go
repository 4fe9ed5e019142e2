// Package ner defines the named-entity recognition boundary used by
// contact extraction. The core only ever filters entities down to
// persons; everything else about the recognizer is pluggable.
package ner

// LabelPerson is the entity label for person names.
const LabelPerson = "PERSON"

// Entity is a labeled span of text.
type Entity struct {
	Text  string
	Label string
}

// Recognizer extracts named entities from free text.
type Recognizer interface {
	Entities(text string) []Entity
}
