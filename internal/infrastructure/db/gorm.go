package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trustlend-backend/internal/domain/account"
	"trustlend-backend/internal/domain/contract"
	"trustlend-backend/internal/domain/endorsement"
	"trustlend-backend/internal/domain/loanrequest"
	"trustlend-backend/internal/domain/notification"
	"trustlend-backend/internal/domain/offer"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// duplicate-key violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates/updates the schema for every aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&account.Account{},
		&account.ScoreEvent{},
		&endorsement.Edge{},
		&offer.Offer{},
		&loanrequest.LoanRequest{},
		&loanrequest.GuarantorRequest{},
		&contract.Contract{},
		&contract.Transaction{},
		&notification.Notification{},
	)
}
