package domain

import "errors"

var (
	// ErrNoActiveSession is returned when an operation needs a running timer.
	ErrNoActiveSession = errors.New("no timer running")
	// ErrEmptyNote is returned when a note is blank.
	ErrEmptyNote = errors.New("note cannot be empty")
)
