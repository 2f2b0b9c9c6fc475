package domain

import (
	"strconv"
	"strings"
	"time"
)

// BaseModel is the common base struct for locally persisted models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of DeletedAt.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParsePositiveInt parses a configuration value as a positive integer.
// Empty, unparsable, zero, and negative values yield def.
func ParsePositiveInt(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
