package service

import "errors"

// ErrEmptyQuestion is returned when a chat request carries no question.
// Handlers map it to a 400 response.
var ErrEmptyQuestion = errors.New("question is required")

// ErrUnsupportedAudioFormat is returned when an uploaded audio file's
// extension is not in the accepted whitelist.
var ErrUnsupportedAudioFormat = errors.New("unsupported audio format")

// ErrInvalidSaleAmount is returned when a sale is recorded with a
// non-positive amount.
var ErrInvalidSaleAmount = errors.New("sale amount must be positive")
