// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/pkg/errors"

// validation errors, the tx is rejected and the store is left unchanged
var (
	ErrMissingField            = errors.New("ErrMissingField")
	ErrUnknownAction           = errors.New("ErrUnknownAction")
	ErrDuplicateGame           = errors.New("ErrDuplicateGame")
	ErrInvalidPlayerCount      = errors.New("ErrInvalidPlayerCount")
	ErrMissingHand             = errors.New("ErrMissingHand")
	ErrInvalidHand             = errors.New("ErrInvalidHand")
	ErrUnknownGame             = errors.New("ErrUnknownGame")
	ErrGameComplete            = errors.New("ErrGameComplete")
	ErrDuplicateHandSubmission = errors.New("ErrDuplicateHandSubmission")
	ErrInconsistentState       = errors.New("ErrInconsistentState")
	// a shoot would fill the last seat before the creator played
	ErrCreatorHandPending      = errors.New("ErrCreatorHandPending")
)

// ErrInternalInvariant apply found a state validation should have excluded.
// It is a defect, never bad input, and nothing is written.
var ErrInternalInvariant = errors.New("ErrInternalInvariant")

var validationErrors = []error{
	ErrMissingField,
	ErrUnknownAction,
	ErrDuplicateGame,
	ErrInvalidPlayerCount,
	ErrMissingHand,
	ErrInvalidHand,
	ErrUnknownGame,
	ErrGameComplete,
	ErrDuplicateHandSubmission,
	ErrInconsistentState,
	ErrCreatorHandPending,
}

// IsInternal err is, or wraps, ErrInternalInvariant
func IsInternal(err error) bool {
	return err != nil && errors.Cause(err) == ErrInternalInvariant
}

// IsRejection err is, or wraps, one of the validation errors
func IsRejection(err error) bool {
	if err == nil {
		return false
	}
	cause := errors.Cause(err)
	for _, e := range validationErrors {
		if cause == e {
			return true
		}
	}
	return false
}

// Internalf wrap ErrInternalInvariant with a description
func Internalf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInternalInvariant, format, args...)
}
