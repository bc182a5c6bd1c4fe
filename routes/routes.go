package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/studentms/backend/config"
	"github.com/studentms/backend/handlers"
	"github.com/studentms/backend/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	std := handlers.NewStudentHandler(db)
	att := handlers.NewAttendanceHandler(db)
	fee := handlers.NewFeeHandler(db)
	auth := handlers.NewAuthHandler(db, cfg.JWTSecret)
	dash := handlers.NewDashboardHandler(db)

	e.GET("/", handlers.Index)
	e.GET("/health", handlers.Health)

	e.POST("/auth/login", auth.Login)

	api := e.Group("/api")

	api.GET("/students", std.List)
	api.POST("/students", std.Create)
	api.GET("/students/search", std.Search)
	api.GET("/students/:id", std.Get)
	api.PUT("/students/:id", std.Update)
	api.DELETE("/students/:id", std.Delete)

	api.GET("/attendance", att.Today)
	api.POST("/attendance", att.Mark)
	api.GET("/attendance/:date", att.ByDate)
	api.GET("/students/:id/attendance", att.Summary)

	api.GET("/fees", fee.List)
	api.GET("/fees/stats", fee.Stats)
	api.POST("/fees", fee.Upsert)
	api.DELETE("/fees/:id", fee.Delete)
	api.GET("/students/:id/fees", fee.ByStudent)

	admin := e.Group("/admin", middlewares.RequireAuth(cfg.JWTSecret))
	admin.GET("/dashboard", dash.Daily)
}
