package domain

import "errors"

var (
	ErrTopicNotFound        = errors.New("topic not found")
	ErrNewsResourceNotFound = errors.New("news resource not found")
	ErrInvalidChangeList    = errors.New("invalid change list")
	ErrRemoteUnavailable    = errors.New("remote data source unavailable")
	ErrPreferencesConflict  = errors.New("preferences update conflict")
	ErrInvalidPreference    = errors.New("invalid preference value")
)
