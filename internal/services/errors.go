package services

import "errors"

var (
	ErrInvalidQcType        = errors.New("qc type must be 'mfg_qc' or 'pkg_qc'")
	ErrQcGateLocked         = errors.New("packaging QC cannot start before manufacturing QC is approved")
	ErrOpenSubmissionExists = errors.New("a pending submission already exists for this QC gate")
	ErrRejectNoteRequired   = errors.New("a rejection requires a note")
	ErrUnknownLifecycle     = errors.New("unknown lifecycle status")
	ErrNoLines              = errors.New("an order needs at least one line")

	ErrInvalidTOTPCode = errors.New("invalid verification code")
	ErrNoTOTPSecret    = errors.New("2FA setup has not been started")
	ErrTOTPNotEnabled  = errors.New("2FA is not enabled for this user")
)
