package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
	ErrOfferNotFound     = errors.New("offer not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)
