package app

import (
	"os"

	"go-bookingdesk/internal/appointment"
	"go-bookingdesk/internal/bootstrap"
	"go-bookingdesk/internal/employee"
	"go-bookingdesk/internal/middleware"
	"go-bookingdesk/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and modules. Every client is constructed here
// and injected; nothing is held as package-level state.
func BuildApp(router *gin.Engine, auditLogger bootstrap.AuditLogger) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(&employee.Employee{}, &appointment.Appointment{}); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// Redis only backs the dashboard stats cache; the portal runs without it.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			zap.L().Warn("redis unavailable, dashboard stats cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true,
	}))
	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	router.GET("/", func(c *gin.Context) {
		c.String(200, "API is running")
	})

	return registerModules(router, db, gormDB, rdb, auditLogger)
}
