package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"check-vero.backend/internal/config"
	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/domain/repositories"
	infrarepos "check-vero.backend/internal/infrastructure/repositories"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	fatalfFn = log.Fatalf
)

func nullString(s string) null.String {
	return null.StringFrom(s)
}

// seedRecords are the well-known numbers every fresh registry starts with.
var seedRecords = []*entities.PhoneRecord{
	{
		PhoneNumber: "+31612345678",
		CompanyName: "Acme Bank",
		Description: nullString("Customer Service Line"),
	},
	{
		PhoneNumber: "+61298765432",
		CompanyName: "Gov Australia",
		Description: nullString("Government Services"),
	},
	{
		PhoneNumber: "+14155552020",
		CompanyName: "TechCorp Support",
		Description: nullString("Technical Support Hotline"),
	},
	{
		PhoneNumber: "+442071234567",
		CompanyName: "British Telecom",
		Description: nullString("Customer Services"),
	},
}

func seedRegistry(ctx context.Context, repo repositories.PhoneRecordRepository) (int, error) {
	created := 0
	for _, seed := range seedRecords {
		record := &entities.PhoneRecord{
			PhoneNumber:  seed.PhoneNumber,
			CompanyName:  seed.CompanyName,
			Description:  seed.Description,
			RegisteredBy: entities.SystemRegistrant,
			Verified:     true,
			IsActive:     true,
		}
		if err := repo.Create(ctx, record); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				log.Printf("⏭️ %s already registered, skipping", seed.PhoneNumber)
				continue
			}
			return created, err
		}
		created++
		log.Printf("✅ Registered %s (%s)", record.PhoneNumber, record.CompanyName)
	}
	return created, nil
}

func main() {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		fatalfFn("Failed to connect to database: %v", err)
	}

	repo := infrarepos.NewPhoneRecordRepository(db)
	created, err := seedRegistry(context.Background(), repo)
	if err != nil {
		fatalfFn("Failed to seed registry: %v", err)
	}

	log.Printf("🌱 Seeded %d registry records", created)
}
