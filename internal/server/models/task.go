package models

// Task is a private to-do row owned by exactly one user. Every read and
// mutation carries the owner predicate; a task is never visible outside its
// owning identity.
type Task struct {
	ID     int64
	Title  string
	Time   string
	UserID string
}
