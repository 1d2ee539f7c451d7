package check

import (
	"github.com/napalu/i18ncheck/catalog"
	"github.com/napalu/i18ncheck/placeholder"
)

// Kind identifies the type of a Finding
type Kind int

const (
	MissingKey Kind = iota
	ExtraKey
	VariableMismatch
	UnusedKeyStillTranslated
)

func (k Kind) String() string {
	switch k {
	case MissingKey:
		return "MissingKey"
	case ExtraKey:
		return "ExtraKey"
	case VariableMismatch:
		return "VariableMismatch"
	case UnusedKeyStillTranslated:
		return "UnusedKeyStillTranslated"
	default:
		return "Unknown"
	}
}

// Finding is a single inconsistency between a language and the base language.
//
// File refers to the document of Language holding Key, BaseFile to the base language document.
// For a MissingKey File is unset; for an ExtraKey BaseFile is unset. Expected and Found are only
// set on a VariableMismatch.
type Finding struct {
	Kind     Kind
	Language string
	Key      string
	Expected placeholder.Set
	Found    placeholder.Set
	File     catalog.FileRef
	BaseFile catalog.FileRef
}
