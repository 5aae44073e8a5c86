package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/goliatone/go-formtemplate/pkg/template"
)

// record is the persisted row. The document itself is stored as JSON so the
// schema never has to chase the document model.
type record struct {
	ID        string `gorm:"primaryKey;size:36"`
	Document  []byte `gorm:"type:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (record) TableName() string { return "form_templates" }

// Gorm is a MySQL-backed Store.
type Gorm struct {
	db *gorm.DB
}

var _ Store = (*Gorm)(nil)

// OpenGorm connects to MySQL with the given DSN and migrates the schema.
func OpenGorm(dsn string) (*Gorm, error) {
	if dsn == "" {
		return nil, errors.New("storage: dsn is required")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("storage: open mysql: %w", err)
	}
	return NewGorm(db)
}

// NewGorm wraps an existing gorm handle, migrating the schema.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if db == nil {
		return nil, errors.New("storage: db handle is required")
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) List(ctx context.Context) ([]*template.Template, error) {
	var rows []record
	if err := g.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	out := make([]*template.Template, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (g *Gorm) Get(ctx context.Context, id string) (*template.Template, error) {
	var row record
	err := g.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get %s: %w", id, err)
	}
	return decodeRecord(row)
}

func (g *Gorm) Create(ctx context.Context, doc *template.Template) (*template.Template, error) {
	if doc == nil {
		return nil, errors.New("storage: document is required")
	}
	stored := doc.Clone()
	stored.ID = uuid.NewString()

	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("storage: encode document: %w", err)
	}
	row := record{ID: stored.ID, Document: payload}
	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("storage: create: %w", err)
	}
	return stored, nil
}

func (g *Gorm) Update(ctx context.Context, doc *template.Template) (*template.Template, error) {
	if doc == nil || doc.ID == "" {
		return nil, errors.New("storage: document id is required")
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("storage: encode document: %w", err)
	}

	result := g.db.WithContext(ctx).
		Model(&record{}).
		Where("id = ?", doc.ID).
		Update("document", payload)
	if result.Error != nil {
		return nil, fmt.Errorf("storage: update %s: %w", doc.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

func (g *Gorm) Delete(ctx context.Context, id string) error {
	result := g.db.WithContext(ctx).Delete(&record{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("storage: delete %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeRecord(row record) (*template.Template, error) {
	var doc template.Template
	if err := json.Unmarshal(row.Document, &doc); err != nil {
		return nil, fmt.Errorf("storage: decode document %s: %w", row.ID, err)
	}
	doc.ID = row.ID
	return &doc, nil
}
