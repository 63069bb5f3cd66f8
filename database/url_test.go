package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructDatabaseURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		dbName   string
		expected string
	}{
		{"no database name", "postgres://u:p@db:5432", "", "postgres://u:p@db:5432"},
		{"append name", "postgres://u:p@db:5432", "fivem", "postgres://u:p@db:5432/fivem?sslmode=disable"},
		{"trailing slash", "postgres://u:p@db:5432/", "fivem", "postgres://u:p@db:5432/fivem?sslmode=disable"},
		{"existing query", "postgres://u:p@db:5432?connect_timeout=5", "fivem", "postgres://u:p@db:5432/fivem?connect_timeout=5&sslmode=disable"},
		{"existing sslmode", "postgres://u:p@db:5432?sslmode=require", "fivem", "postgres://u:p@db:5432/fivem?sslmode=require"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConstructDatabaseURL(tt.baseURL, tt.dbName))
		})
	}
}
