package model

// Scope carries the caller identity through usecases.
type Scope struct {
	UserID string
}
