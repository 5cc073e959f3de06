package inits

import (
	"fmt"

	"github.com/CorrelAid/form_intake/logger"
	"github.com/CorrelAid/form_intake/models"
	"github.com/hashicorp/go-memdb"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// memdb table names.
const (
	LeadTable     = "lead"
	FeedbackTable = "feedback"
)

func recordTable(name string) *memdb.TableSchema {
	return &memdb.TableSchema{
		Name: name,
		Indexes: map[string]*memdb.IndexSchema{
			"id": {
				Name:         "id",
				Unique:       true,
				Indexer:      &memdb.UintFieldIndex{Field: "ID"},
				AllowMissing: false,
			},
			"email": {
				Name:         "email",
				Unique:       false,
				Indexer:      &memdb.StringFieldIndex{Field: "Email", Lowercase: true},
				AllowMissing: false,
			},
		},
	}
}

// NewMemDB creates the in-memory database holding the lead and feedback tables.
func NewMemDB() (*memdb.MemDB, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			LeadTable:     recordTable(LeadTable),
			FeedbackTable: recordTable(FeedbackTable),
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return db, nil
}

// OpenPostgres connects through gorm's pgx-based postgres dialector and
// migrates the lead and feedback tables.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.AutoMigrate(&models.Lead{}, &models.Feedback{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}
	logger.GetLogger().Infow("Connected to postgres", "tables", []string{"leads", "feedbacks"})
	return db, nil
}
