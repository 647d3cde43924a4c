package v1

import (
	"time"

	ez_uuid "github.com/smart-budget/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month time.Time `uri:"month" time_format:"2006-01" time_utc:"1" example:"2024-01" binding:"required"` // Year and month in YYYY-MM format
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}

// paginate returns the page of items and the pagination for it. A negative
// limit returns all items from the offset on.
func paginate[T any](items []T, offset uint, limit int) ([]T, Pagination) {
	total := len(items)

	start := total
	if offset < uint(total) {
		start = int(offset)
	}

	end := total
	if limit >= 0 && limit < total-start {
		end = start + limit
	}

	page := items[start:end]
	return page, Pagination{
		Count:  len(page),
		Offset: offset,
		Limit:  limit,
		Total:  total,
	}
}
