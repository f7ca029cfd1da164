package library

import "errors"

// Sentinel errors returned by Store operations. Match with errors.Is.
var (
	// ErrInvalidID is returned when an id is empty or whitespace-only.
	ErrInvalidID = errors.New("id must not be empty")

	// ErrDuplicateID is returned when adding a book or user whose id is taken.
	ErrDuplicateID = errors.New("id already exists")

	// ErrNotFound is returned when a referenced book or user does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyIssued is returned when issuing a book that is out on loan.
	ErrAlreadyIssued = errors.New("book is already issued")

	// ErrNotIssuedToUser is returned when returning a book the given user
	// does not currently hold.
	ErrNotIssuedToUser = errors.New("book is not issued to this user")

	// ErrBookIssued is returned when deleting an issued book under the
	// forbid policy.
	ErrBookIssued = errors.New("book is currently issued")

	// ErrCorruptData is returned when the catalog file cannot be parsed.
	ErrCorruptData = errors.New("catalog file is corrupt")
)
