package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	"go-bookingdesk/internal/domain"
	"go-bookingdesk/internal/employee"
	"go-bookingdesk/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seed creates an employee record out-of-band. The API itself never creates,
// mutates or deletes directory entries.
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	employeeID := flag.String("employee-id", "", "business employee id, e.g. EMP007")
	email := flag.String("email", "", "employee email")
	password := flag.String("password", "", "plaintext password to hash")
	role := flag.String("role", "staff", "role: staff, hr or ceo")
	flag.Parse()

	if *employeeID == "" || *email == "" || *password == "" {
		logger.Fatal("employee-id, email and password are required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		3,
	)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(&employee.Employee{}); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("password hash failed", zap.Error(err))
	}

	repo := employee.NewRepository(gormDB)
	record := &employee.Employee{
		ID:         uuid.New(),
		EmployeeID: strings.TrimSpace(*employeeID),
		Email:      strings.ToLower(strings.TrimSpace(*email)),
		Password:   string(hashed),
		Role:       domain.NormalizeRole(*role),
	}

	if err := repo.Create(context.Background(), record); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			logger.Fatal("employee already exists",
				zap.String("employee_id", record.EmployeeID),
				zap.String("email", record.Email),
			)
		}
		logger.Fatal("create employee failed", zap.Error(err))
	}

	logger.Info("employee created",
		zap.String("employee_id", record.EmployeeID),
		zap.String("email", record.Email),
		zap.String("role", record.Role.String()),
	)
}
