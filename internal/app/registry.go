package app

import (
	"database/sql"
	"os"
	"strconv"

	"go-bookingdesk/internal/admin"
	"go-bookingdesk/internal/appointment"
	"go-bookingdesk/internal/auth"
	"go-bookingdesk/internal/bootstrap"
	"go-bookingdesk/internal/employee"
	"go-bookingdesk/internal/notification"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	auditLogger bootstrap.AuditLogger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	appointmentRepo := appointment.NewRepository(gormDB)

	// --- Outbound collaborators ---
	dispatcher := notification.NewDispatcher(notification.Config{
		Host:       os.Getenv("EMAIL_HOST"),
		Port:       envInt("EMAIL_PORT", 587),
		Username:   os.Getenv("EMAIL_USER"),
		Password:   os.Getenv("EMAIL_PASSWORD"),
		From:       os.Getenv("EMAIL_FROM"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
	})

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)
	authService := auth.NewService(employeeRepo)

	appointmentService := appointment.NewService(db, appointmentRepo, employeeRepo, dispatcher)
	adminService := admin.NewService(db, appointmentRepo, auditLogger)
	if rdb != nil {
		appointmentService = appointment.NewServiceWithCache(db, appointmentRepo, employeeRepo, dispatcher, rdb)
		adminService = admin.NewServiceWithCache(db, appointmentRepo, auditLogger, rdb)
	}

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	appointmentHandler := appointment.NewHandler(appointmentService)
	authHandler := auth.NewHandler(authService)
	adminHandler := admin.NewHandler(adminService)

	// --- Routes ---
	api := router.Group("")
	{
		employee.RegisterRoutes(api, employeeHandler)
		appointment.RegisterRoutes(api, appointmentHandler)
		auth.RegisterRoutes(api, authHandler)
		admin.RegisterRoutes(api, adminHandler, employeeRepo)
	}

	return nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
