package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFiber(t *testing.T) {
	tests := []struct {
		query string
		want  Params
	}{
		{"", Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"}},
		{"?page=3&per_page=10&sort_by=title&order=ASC", Params{Page: 3, PerPage: 10, SortBy: "title", SortOrder: "asc"}},
		{"?page=-2&limit=9999&order=sideways", Params{Page: 1, PerPage: 200, SortBy: "created_at", SortOrder: "desc"}},
		{"?page=abc&per_page=0", Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got Params
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				got = ParseFiber(c, "created_at", "desc", DefaultOpts)
				return nil
			})
			_, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParams_OrderByAndOffset(t *testing.T) {
	cols := map[string]string{"created_at": "survey_created_at", "title": "survey_title"}

	assert.Equal(t, "survey_title ASC", Params{SortBy: "title", SortOrder: "asc"}.OrderBy(cols, "created_at"))
	// unknown keys never reach SQL
	assert.Equal(t, "survey_created_at DESC", Params{SortBy: "1; drop table", SortOrder: "x"}.OrderBy(cols, "created_at"))

	p := Params{Page: 3, PerPage: 20}
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 40, p.Offset())
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(41, Params{Page: 2, PerPage: 20})
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	m = BuildMeta(0, Params{Page: 1, PerPage: 20})
	assert.Zero(t, m.TotalPages)
	assert.False(t, m.HasNext)
}
