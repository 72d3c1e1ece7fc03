// file: internals/features/academics/sessions/dto/session_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcademicYear(t *testing.T) {
	got, err := ParseAcademicYear("2025-2026")
	require.NoError(t, err)
	assert.Equal(t, "2025-2026", got)

	got, err = ParseAcademicYear("  2024-2025  ")
	require.NoError(t, err)
	assert.Equal(t, "2024-2025", got)

	for _, bad := range []string{
		"2025-2027", // loncat tahun
		"2026-2025", // mundur
		"2025-25",
		"25-2026",
		"2025/2026",
		"20252026",
		"abcd-efgh",
		"",
	} {
		_, err := ParseAcademicYear(bad)
		assert.Error(t, err, "input %q harus ditolak", bad)
	}
}
