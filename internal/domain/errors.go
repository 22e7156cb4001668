package domain

import "errors"

// Sentinel errors for the mnemo core and its collaborators.
var (
	// ErrInvalidInput signals a malformed or empty digit string.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoEncoding signals a word with no mappable consonant sounds.
	// Such words are excluded from the index, never surfaced to callers.
	ErrNoEncoding = errors.New("no encoding")
	// ErrUnknownSound signals a cipher table miss. With a well-formed
	// table this is an internal invariant violation.
	ErrUnknownSound = errors.New("unknown sound")
	// ErrEmptyWordList signals that the loader produced no usable words.
	ErrEmptyWordList = errors.New("empty word list")
	// ErrTaggerProviderError signals a part-of-speech provider failure.
	ErrTaggerProviderError = errors.New("tagger provider error")
)
