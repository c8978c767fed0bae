package legalcase

import "errors"

var (
	ErrCaseNotFound      = errors.New("case not found")
	ErrCaseIDCollision   = errors.New("case id already exists")
	ErrInvalidTransition = errors.New("invalid case status transition")
	ErrConcurrentUpdate  = errors.New("case was modified by another request")
)
