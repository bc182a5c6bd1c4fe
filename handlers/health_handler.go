package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health serves /health.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Index serves /, a plain-text map of the API for quick manual checks.
func Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Student Management System API",
		"endpoints": map[string]string{
			"GET /api/students":                "list all students",
			"POST /api/students":               "add a student",
			"GET /api/students/:id":            "get one student",
			"PUT /api/students/:id":            "update a student",
			"DELETE /api/students/:id":         "delete a student",
			"GET /api/students/search?q=":      "search students",
			"GET /api/attendance":              "today's attendance",
			"POST /api/attendance":             "write attendance for a date",
			"GET /api/attendance/:date":        "attendance for a date",
			"GET /api/students/:id/attendance": "31-day attendance summary",
			"GET /api/fees":                    "list all fee records",
			"GET /api/students/:id/fees":       "fee records for a student",
			"POST /api/fees":                   "add or update a fee record",
			"DELETE /api/fees/:id":             "delete a fee record",
			"GET /api/fees/stats":              "fee collection statistics",
		},
	})
}
