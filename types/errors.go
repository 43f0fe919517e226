package types

import "errors"

var (
	// ErrNoCredentials is returned by credential selection when no API
	// keys are configured at all.
	ErrNoCredentials = errors.New("no API credentials available")

	// ErrAllAttemptsExhausted is returned by the request executor after
	// every credential and model combination has failed.
	ErrAllAttemptsExhausted = errors.New("all API credentials and models exhausted")

	// ErrResponseParse is returned when the model answers with something
	// that cannot be decoded into the expected shape.
	ErrResponseParse = errors.New("malformed response from language model")

	// ErrExtractionFailed is returned when every text extraction strategy
	// fails for a document.
	ErrExtractionFailed = errors.New("failed to extract text from document")
)
