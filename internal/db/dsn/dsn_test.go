package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starfield-blog/starfield/internal/config"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.Config
		expected string
	}{
		{
			name: "mysql",
			cfg: config.Config{DB: config.DB{
				GormEngine: config.EngineMySQL,
				User:       "blog",
				Password:   "secret",
				Host:       "db.local",
				Port:       3306,
				Name:       "starfield",
				Extras:     "parseTime=True",
			}},
			expected: "blog:secret@tcp(db.local:3306)/starfield?parseTime=True",
		},
		{
			name: "postgres",
			cfg: config.Config{DB: config.DB{
				GormEngine: config.EnginePostgres,
				User:       "blog",
				Password:   "secret",
				Host:       "db.local",
				Port:       5432,
				Name:       "starfield",
				Extras:     "sslmode=disable",
			}},
			expected: "host=db.local port=5432 user=blog password=secret dbname=starfield sslmode=disable",
		},
		{
			name:     "sqlite with path",
			cfg:      config.Config{DB: config.DB{GormEngine: config.EngineSQLite, Path: "data/blog.db"}},
			expected: "data/blog.db",
		},
		{
			name:     "sqlite default path",
			cfg:      config.Config{},
			expected: "starfield.db",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Create(&tc.cfg))
		})
	}
}
