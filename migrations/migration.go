package migrations

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Migration is the bookkeeping row for an applied migration.
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

// Migrator applies registered migrations in batches; each batch can be rolled
// back as a unit.
type Migrator struct {
	db         *gorm.DB
	migrations []MigrationDefinition
}

func NewMigrator(db *gorm.DB) *Migrator {
	db.AutoMigrate(&Migration{})
	return &Migrator{db: db}
}

func (m *Migrator) Register(defs ...MigrationDefinition) {
	m.migrations = append(m.migrations, defs...)
}

// Migrate runs every pending migration inside its own transaction.
func (m *Migrator) Migrate() error {
	log.Println("Running database migrations...")

	batch := m.latestBatch() + 1

	for _, migration := range m.migrations {
		if m.applied(migration.Name) {
			continue
		}

		log.Printf("Migrating: %s", migration.Name)

		tx := m.db.Begin()

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", migration.Name, err)
		}

		if err := tx.Create(&Migration{Name: migration.Name, Batch: batch}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
		}

		tx.Commit()
		log.Printf("Migrated: %s", migration.Name)
	}

	log.Println("Migration completed successfully")
	return nil
}

// Rollback undoes the latest batches, newest migration first.
func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	log.Printf("Rolling back %d migration batch(es)...", steps)

	batch := m.latestBatch()

	for i := 0; i < steps && batch > 0; i++ {
		var appliedRows []Migration
		m.db.Where("batch = ?", batch).Order("id DESC").Find(&appliedRows)

		for _, row := range appliedRows {
			def := m.find(row.Name)
			if def == nil {
				return fmt.Errorf("migration definition not found: %s", row.Name)
			}
			if def.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", row.Name)
			}

			log.Printf("Rolling back: %s", row.Name)

			tx := m.db.Begin()

			if err := def.Down(tx); err != nil {
				tx.Rollback()
				return fmt.Errorf("rollback failed for %s: %w", row.Name, err)
			}

			if err := tx.Delete(&row).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to remove migration record %s: %w", row.Name, err)
			}

			tx.Commit()
		}

		batch--
	}

	log.Println("Rollback completed successfully")
	return nil
}

func (m *Migrator) applied(name string) bool {
	var count int64
	m.db.Model(&Migration{}).Where("name = ?", name).Count(&count)
	return count > 0
}

func (m *Migrator) latestBatch() int {
	var row Migration
	m.db.Order("batch DESC").First(&row)
	return row.Batch
}

func (m *Migrator) find(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
