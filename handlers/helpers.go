package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

func today() string { return time.Now().Format(dateLayout) }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// okJSON writes the {success:true} envelope with extra fields merged in.
func okJSON(c echo.Context, status int, extra map[string]any) error {
	body := map[string]any{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(status, body)
}

// errJSON writes the {success:false, error:...} envelope.
func errJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"success": false, "error": msg})
}

func pathID(c echo.Context) (uint, error) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return uint(n), nil
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// ErrorHandler envelopes anything a handler did not answer itself,
// such as route 404s and auth middleware rejections.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	msg := "internal server error"
	if he, isHTTP := err.(*echo.HTTPError); isHTTP {
		status = he.Code
		msg = fmt.Sprintf("%v", he.Message)
	}
	_ = errJSON(c, status, msg)
}
