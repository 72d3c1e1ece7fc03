// file: internals/route/index_test.go
package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// Registrasi route saja, tanpa DB; handler tidak dipanggil.
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	app := fiber.New()
	SetupRoutes(app, nil)

	out := map[string]bool{}
	for _, r := range app.GetRoutes(true) {
		out[r.Method+" "+r.Path] = true
	}
	return out
}

func TestSetupRoutesRegistersEndpoints(t *testing.T) {
	routes := registeredRoutes(t)

	expected := []string{
		// auth
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/refresh-token",
		"POST /api/auth/logout",
		"GET /api/auth/me",

		// hierarchy drill-down: list + detail + nested children
		"GET /api/u/departments",
		"GET /api/u/departments/:id",
		"GET /api/u/departments/:department_id/levels",
		"GET /api/u/levels/:id",
		"GET /api/u/levels/:level_id/programs",
		"GET /api/u/programs/:id",
		"GET /api/u/programs/:program_id/courses",
		"GET /api/u/courses/:id",
		"GET /api/u/courses/:course_id/semesters",
		"GET /api/u/semesters/:id",
		"GET /api/u/semesters/:semester_id/syllabuses",
		"GET /api/u/syllabuses/:id",

		// schedules & timetable
		"POST /api/a/schedules",
		"DELETE /api/a/schedules/:id",
		"GET /api/u/schedules/session/:session_id",
		"POST /api/a/teachers/available",
		"POST /api/a/rooms/available",
		"GET /api/u/timetable/teacher/:teacher_id/today",
		"GET /api/u/timetable/teacher/:teacher_id/week",
		"GET /api/u/timetable/student/:student_id/today",

		// attendance workflow
		"POST /api/a/class-attendances/start",
		"GET /api/a/class-attendances/:id/requests",
		"POST /api/u/attendances",
		"PATCH /api/a/attendances/:id/status",
	}
	for _, want := range expected {
		assert.True(t, routes[want], "route %s tidak terdaftar", want)
	}
}
