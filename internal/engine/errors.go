package engine

import "fmt"

// ValidationError rejects bad input before any state mutation.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// QuestNotFoundError is returned when a quest id has no catalog entry.
type QuestNotFoundError struct {
	ID int64
}

func (e QuestNotFoundError) Error() string {
	return fmt.Sprintf("quest %d not found", e.ID)
}
