package testutil

import (
	"errors"
)

const DatabaseError = "database error occurred"

// RepoGetData is a generic typed result of a repository call.
type RepoGetData[T any] struct {
	Data T
	Err  error
}

// ToRepoGetData wraps a successful repository return.
func ToRepoGetData[T any](data T) *RepoGetData[T] {
	return &RepoGetData[T]{
		Data: data,
		Err:  nil,
	}
}

// GetRepoError returns a typed error result with the given message.
func GetRepoError[T any](err string) *RepoGetData[T] {
	return &RepoGetData[T]{
		Data: *new(T),
		Err:  errors.New(err),
	}
}

// GetMockRepoError returns the generic database error result.
func GetMockRepoError[T any]() *RepoGetData[T] {
	return GetRepoError[T](DatabaseError)
}
