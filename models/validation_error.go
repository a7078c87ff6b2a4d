package models

import "fmt"

// ValidationError marks a malformed signal for a single symbol. The
// analysis run is expected to skip the symbol, never to abort the batch.
type ValidationError struct {
	Symbol string
	Reason string
}

func NewValidationError(symbol string, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Symbol: symbol,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("invalid signal for %s: %s", ve.Symbol, ve.Reason)
}
