package models

import "time"

// ChatExchange is one user message plus the assistant reply generated for it.
type ChatExchange struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	Message     string    `json:"message"`
	Topic       string    `json:"topic"`
	Reply       string    `json:"reply"`
	Suggestions []string  `json:"suggestions"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
