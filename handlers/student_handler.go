package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/studentms/backend/models"
)

type StudentHandler struct {
	db *gorm.DB
}

func NewStudentHandler(db *gorm.DB) *StudentHandler { return &StudentHandler{db: db} }

type createStudentPayload struct {
	RollNo  string `json:"roll_no" validate:"required,max=20"`
	Name    string `json:"name" validate:"required,max=100"`
	Class   string `json:"class" validate:"required,max=20"`
	Contact string `json:"contact" validate:"required,max=15"`
	Email   string `json:"email" validate:"omitempty,max=100"`
	Address string `json:"address"`
}

func (p *createStudentPayload) normalize() {
	p.RollNo = strings.TrimSpace(p.RollNo)
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.Class = strings.TrimSpace(p.Class)
	p.Contact = strings.TrimSpace(p.Contact)
	p.Email = strings.TrimSpace(p.Email)
	p.Address = strings.TrimSpace(p.Address)
}

// Pointer fields distinguish "absent" from "set to empty": omitted fields
// keep their stored values. roll_no is not updatable.
type updateStudentPayload struct {
	Name    *string `json:"name"`
	Class   *string `json:"class"`
	Contact *string `json:"contact"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// GET /api/students
func (h *StudentHandler) List(c echo.Context) error {
	var students []models.Student
	if err := h.db.Find(&students).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to load students")
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"count":    len(students),
		"students": students,
	})
}

// POST /api/students
func (h *StudentHandler) Create(c echo.Context) error {
	var p createStudentPayload
	if err := c.Bind(&p); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	var count int64
	if err := h.db.Model(&models.Student{}).Where("roll_no = ?", p.RollNo).Count(&count).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to check roll number")
	}
	if count > 0 {
		return errJSON(c, http.StatusConflict, "roll number already exists")
	}

	s := models.Student{
		RollNo:    p.RollNo,
		Name:      p.Name,
		ClassName: p.Class,
		Contact:   p.Contact,
		Email:     p.Email,
		Address:   p.Address,
	}
	if err := h.db.Create(&s).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to create student")
	}
	return okJSON(c, http.StatusCreated, map[string]any{
		"message": "student added successfully",
		"student": s,
	})
}

// GET /api/students/:id
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid student id")
	}
	var s models.Student
	if err := h.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errJSON(c, http.StatusNotFound, "student not found")
		}
		return errJSON(c, http.StatusInternalServerError, "failed to load student")
	}
	return okJSON(c, http.StatusOK, map[string]any{"student": s})
}

// PUT /api/students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid student id")
	}
	var s models.Student
	if err := h.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errJSON(c, http.StatusNotFound, "student not found")
		}
		return errJSON(c, http.StatusInternalServerError, "failed to load student")
	}

	var p updateStudentPayload
	if err := c.Bind(&p); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}
	if p.Name != nil {
		s.Name = strings.Join(strings.Fields(*p.Name), " ")
	}
	if p.Class != nil {
		s.ClassName = strings.TrimSpace(*p.Class)
	}
	if p.Contact != nil {
		s.Contact = strings.TrimSpace(*p.Contact)
	}
	if p.Email != nil {
		s.Email = strings.TrimSpace(*p.Email)
	}
	if p.Address != nil {
		s.Address = strings.TrimSpace(*p.Address)
	}

	if err := h.db.Save(&s).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to update student")
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"message": "student updated successfully",
		"student": s,
	})
}

// DELETE /api/students/:id
//
// Attendance and fee rows of the deleted student are kept as history;
// reads substitute placeholder student fields for them.
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid student id")
	}
	res := h.db.Delete(&models.Student{}, "id = ?", id)
	if res.Error != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to delete student")
	}
	if res.RowsAffected == 0 {
		return errJSON(c, http.StatusNotFound, "student not found")
	}
	return okJSON(c, http.StatusOK, map[string]any{"message": "student deleted successfully"})
}

// GET /api/students/search?q=
//
// Substring match over name, roll_no and class_name. LOWER on both sides
// makes the search case-insensitive regardless of the storage engine.
func (h *StudentHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return errJSON(c, http.StatusBadRequest, "search query required")
	}

	like := "%" + strings.ToLower(q) + "%"
	var students []models.Student
	if err := h.db.
		Where("LOWER(name) LIKE ? OR LOWER(roll_no) LIKE ? OR LOWER(class_name) LIKE ?", like, like, like).
		Find(&students).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "search failed")
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"count":    len(students),
		"students": students,
	})
}
