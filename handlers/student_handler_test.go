package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createStudent(t *testing.T, e *echo.Echo, rollNo, name, class string) uint {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/api/students", map[string]any{
		"roll_no": rollNo,
		"name":    name,
		"class":   class,
		"contact": "9876543210",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	student := body["student"].(map[string]any)
	return uint(student["id"].(float64))
}

func TestCreateStudent(t *testing.T) {
	e, _ := newTestApp(t)

	rec := do(t, e, http.MethodPost, "/api/students", map[string]any{
		"roll_no": "2024001",
		"name":    "Aarav Sharma",
		"class":   "12th Science",
		"contact": "9876543210",
		"email":   "aarav@gmail.com",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	student := body["student"].(map[string]any)
	assert.Equal(t, "2024001", student["roll_no"])
	assert.Equal(t, "12th Science", student["class"])
	assert.NotZero(t, student["id"])
	assert.NotEmpty(t, student["admission_date"])
}

func TestCreateStudentMissingFields(t *testing.T) {
	e, _ := newTestApp(t)

	rec := do(t, e, http.MethodPost, "/api/students", map[string]any{
		"roll_no": "2024001",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestCreateStudentDuplicateRollNo(t *testing.T) {
	e, _ := newTestApp(t)
	createStudent(t, e, "2024001", "Aarav Sharma", "12th Science")

	// same roll, entirely different fields: still a conflict
	rec := do(t, e, http.MethodPost, "/api/students", map[string]any{
		"roll_no": "2024001",
		"name":    "Priya Patel",
		"class":   "11th Commerce",
		"contact": "9876543211",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestGetStudentNotFound(t *testing.T) {
	e, _ := newTestApp(t)

	rec := do(t, e, http.MethodGet, "/api/students/999", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestUpdateStudentPartial(t *testing.T) {
	e, _ := newTestApp(t)
	id := createStudent(t, e, "2024001", "Aarav Sharma", "12th Science")

	rec := do(t, e, http.MethodPut, fmt.Sprintf("/api/students/%d", id), map[string]any{
		"class": "12th Commerce",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	student := decode(t, rec)["student"].(map[string]any)
	assert.Equal(t, "12th Commerce", student["class"])
	assert.Equal(t, "Aarav Sharma", student["name"], "omitted fields keep prior values")
	assert.Equal(t, "2024001", student["roll_no"])
}

func TestUpdateStudentEmptyBody(t *testing.T) {
	e, _ := newTestApp(t)
	id := createStudent(t, e, "2024001", "Aarav Sharma", "12th Science")

	rec := do(t, e, http.MethodPut, fmt.Sprintf("/api/students/%d", id), map[string]any{}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	student := decode(t, rec)["student"].(map[string]any)
	assert.Equal(t, "Aarav Sharma", student["name"])
	assert.Equal(t, "12th Science", student["class"])
	assert.Equal(t, "9876543210", student["contact"])
}

func TestUpdateStudentNotFound(t *testing.T) {
	e, _ := newTestApp(t)

	rec := do(t, e, http.MethodPut, "/api/students/999", map[string]any{"name": "X"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteStudentThenGet(t *testing.T) {
	e, _ := newTestApp(t)
	id := createStudent(t, e, "2024001", "Aarav Sharma", "12th Science")

	rec := do(t, e, http.MethodDelete, fmt.Sprintf("/api/students/%d", id), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/api/students/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodDelete, fmt.Sprintf("/api/students/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentNonNumericID(t *testing.T) {
	e, _ := newTestApp(t)
	createStudent(t, e, "2024001", "Aarav Sharma", "12th Science")

	// malformed ids are bad input, never a storage error
	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		var body map[string]any
		if m == http.MethodPut {
			body = map[string]any{"name": "X"}
		}
		rec := do(t, e, m, "/api/students/abc", body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, m)
		assert.Equal(t, false, decode(t, rec)["success"], m)
	}
}

func TestSearchStudents(t *testing.T) {
	e, _ := newTestApp(t)
	createStudent(t, e, "2024001", "Aarav Sharma", "12th Science")
	createStudent(t, e, "2024002", "Priya Patel", "11th Commerce")

	rec := do(t, e, http.MethodGet, "/api/students/search", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty query is rejected")

	// search is case-insensitive on name, roll_no and class_name
	rec = do(t, e, http.MethodGet, "/api/students/search?q=aarav", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["count"])

	rec = do(t, e, http.MethodGet, "/api/students/search?q=commerce", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["count"])

	rec = do(t, e, http.MethodGet, "/api/students/search?q=2024", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decode(t, rec)["count"])

	rec = do(t, e, http.MethodGet, "/api/students/search?q=nobody", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["count"])
}

func TestListStudents(t *testing.T) {
	e, _ := newTestApp(t)

	rec := do(t, e, http.MethodGet, "/api/students", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["count"])

	createStudent(t, e, "2024001", "Aarav Sharma", "12th Science")
	createStudent(t, e, "2024002", "Priya Patel", "11th Commerce")

	rec = do(t, e, http.MethodGet, "/api/students", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["students"], 2)
}
