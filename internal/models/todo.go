package models

import "time"

type Order string

const (
	OrderNewest Order = "newest"
	OrderOldest Order = "oldest"
)

type Todo struct {
	ID        int64
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
