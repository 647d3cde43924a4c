package models

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// IncomeGroup is the group of all categories that income is booked on.
const IncomeGroup = "Income"

// UnknownCategoryName and UnknownCategoryColor are used for category
// IDs that do not resolve to an existing category.
const (
	UnknownCategoryName  = "Unknown"
	UnknownCategoryColor = "#4B5563"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Category struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Icon   string    `json:"icon"`
	UserID uuid.UUID `json:"userId"`
	Group  string    `json:"group,omitempty"`
}

// IsIncome reports whether the category belongs to the income group.
// Income categories cannot have budgets.
func (c Category) IsIncome() bool {
	return c.Group == IncomeGroup
}

// Normalize trims whitespace from all string fields.
func (c *Category) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	c.Icon = strings.TrimSpace(c.Icon)
	c.Group = strings.TrimSpace(c.Group)
}

func (c Category) Validate() error {
	if c.Name == "" {
		return invalid("name", "is required")
	}

	if !colorPattern.MatchString(c.Color) {
		return invalid("color", "must be a hex color like #34D399")
	}

	if c.Icon == "" {
		return invalid("icon", "is required")
	}

	return nil
}
