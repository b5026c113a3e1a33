// Package repository defines error values that are reused across
// repositories. These sentinel values allow handlers to distinguish
// failure scenarios without inspecting driver errors: ErrDuplicateWord
// maps to HTTP 409, ErrNotFound to HTTP 404.
package repository

import "errors"

// ErrDuplicateWord is returned when a custom dictionary word already
// exists (active or not).
var ErrDuplicateWord = errors.New("word already exists")

// ErrNotFound is returned when the targeted row does not exist.
var ErrNotFound = errors.New("not found")
