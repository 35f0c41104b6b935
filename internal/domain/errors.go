package domain

import "errors"

var (
	ErrNotLoggedIn        = errors.New("no user is logged in")
	ErrNotAuthorized      = errors.New("not authorized for this operation")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrRequestNotFound     = errors.New("sponsorship request not found")
)

var (
	ErrEventNotActive           = errors.New("event is not active")
	ErrBookingNotActive         = errors.New("booking is not active")
	ErrRequestNotPending        = errors.New("sponsorship request is not pending")
	ErrPerformanceStarted       = errors.New("performance has already started")
	ErrCancellationWindowClosed = errors.New("cancellation window has closed")
	ErrNotEnoughTickets         = errors.New("not enough tickets remaining")
	ErrSponsorshipExists        = errors.New("event already has a sponsorship request")
)

var (
	ErrValidation = errors.New("validation error")
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrPaymentFailed = errors.New("payment was declined")
	ErrRefundFailed  = errors.New("refund was declined")
)
