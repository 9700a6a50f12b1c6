package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform response shape on every route. The HTTP status
// mirrors Success: 2xx iff true.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// pagination is the list-response metadata block.
type pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// paged wraps list data with its pagination block.
type paged struct {
	Items      any        `json:"items"`
	Pagination pagination `json:"pagination"`
}

func newPaged(items any, total int64, page, limit int) paged {
	if page < 1 {
		page = 1
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return paged{
		Items: items,
		Pagination: pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}
}
