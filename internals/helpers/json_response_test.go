// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromOffset(t *testing.T) {
	p := BuildPaginationFromOffset(45, 0, 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromOffset(45, 40, 20)
	assert.Equal(t, 3, p.Page)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// total 0 tetap 1 halaman
	p = BuildPaginationFromOffset(0, 0, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)

	// limit tidak valid → fallback default
	p = BuildPaginationFromOffset(10, 0, 0)
	assert.Equal(t, 20, p.PerPage)
}
