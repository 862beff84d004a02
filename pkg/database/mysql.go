package database

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/newrayan/leads-service/environments"
	"github.com/newrayan/leads-service/pkg/logger"
)

func NewMySQLDB(cfg environments.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&collation=utf8mb4_unicode_ci",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Infof("Connected to MySQL database")
	return db, nil
}

func RunMigrations(db *sqlx.DB) error {
	// utf8mb4 so Arabic names and messages round-trip intact.
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id CHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		phone_number VARCHAR(20) NOT NULL,
		selected_service VARCHAR(100) NOT NULL,
		message TEXT,
		contacted BOOLEAN NOT NULL DEFAULT FALSE,
		contacted_at DATETIME,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_submissions_created_at (created_at),
		INDEX idx_submissions_contacted (contacted)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Infof("Database migrations completed")

	return nil
}

func SeedTestData(db *sqlx.DB) error {
	var count int

	err := db.Get(&count, "SELECT COUNT(*) FROM submissions")
	if err != nil {
		return err
	}

	if count > 0 {
		logger.Infof("Database already has %d submissions, skipping seed", count)
		return nil
	}

	testSubmissions := []struct {
		name    string
		phone   string
		service string
		message string
	}{
		{"أحمد الصالح", "99123456", "teeth-whitening", ""},
		{"فاطمة العنزي", "+96566112233", "hollywood-smile", "أفضل موعد مساء الخميس"},
		{"يوسف المطيري", "96550998877", "dental-implants", ""},
		{"نورة الكندري", "055667788", "orthodontics", "السؤال عن تقويم شفاف"},
		{"سالم الرشيدي", "98765432", "consultation", ""},
	}

	for _, sub := range testSubmissions {
		var message *string
		if sub.message != "" {
			m := sub.message
			message = &m
		}
		_, err := db.Exec(
			"INSERT INTO submissions (id, name, phone_number, selected_service, message, contacted) VALUES (UUID(), ?, ?, ?, ?, FALSE)",
			sub.name, sub.phone, sub.service, message,
		)
		if err != nil {
			return fmt.Errorf("failed to seed test data: %w", err)
		}
	}

	logger.Infof("Seeded %d test submissions", len(testSubmissions))
	return nil
}
