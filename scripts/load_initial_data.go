package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crm-distribution-backend/internal/config"
	"crm-distribution-backend/internal/database"
	"crm-distribution-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type SourceData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type OperatorData struct {
	Name     string  `yaml:"name"`
	IsActive *bool   `yaml:"is_active,omitempty"`
	MaxLoad  *int    `yaml:"max_load,omitempty"`
	Weights  []Weight `yaml:"weights,omitempty"`
}

type Weight struct {
	SourceName string  `yaml:"source_name"`
	Weight     float64 `yaml:"weight"`
}

// File structures
type SourcesFile struct {
	Sources []SourceData `yaml:"sources"`
}

type OperatorsFile struct {
	Operators []OperatorData `yaml:"operators"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	sources, err := loadSources(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}

	operators, err := loadOperators(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load operators: %w", err)
	}

	// Create sources first
	sourceMap := make(map[string]*models.Source)
	sourceCreated := 0
	for _, sourceData := range sources {
		source, created, err := createSource(db, sourceData)
		if err != nil {
			return fmt.Errorf("failed to create source %s: %w", sourceData.Name, err)
		}
		sourceMap[sourceData.Name] = source
		if created {
			sourceCreated++
		}
	}
	log.Printf("Sources: %d created, %d total", sourceCreated, len(sources))

	// Create operators and their per-source weights
	operatorCreated := 0
	weightCreated := 0
	for _, operatorData := range operators {
		operator, created, err := createOperator(db, operatorData)
		if err != nil {
			return fmt.Errorf("failed to create operator %s: %w", operatorData.Name, err)
		}
		if created {
			operatorCreated++
		}

		for _, w := range operatorData.Weights {
			source := sourceMap[w.SourceName]
			if source == nil {
				log.Printf("Warning: source %s not found for operator %s", w.SourceName, operatorData.Name)
				continue
			}
			created, err := upsertWeight(db, operator, source, w.Weight)
			if err != nil {
				log.Printf("Warning: failed to set weight for operator %s on source %s: %v", operatorData.Name, w.SourceName, err)
				continue
			}
			if created {
				weightCreated++
			}
		}
	}
	log.Printf("Operators: %d created, %d total", operatorCreated, len(operators))
	log.Printf("Weights: %d created", weightCreated)

	return nil
}

func loadSources(dataDir string) ([]SourceData, error) {
	var allSources []SourceData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "sources") {
			var file SourcesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSources = append(allSources, file.Sources...)
		}
		return nil
	})

	return allSources, err
}

func loadOperators(dataDir string) ([]OperatorData, error) {
	var allOperators []OperatorData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "operators") {
			var file OperatorsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOperators = append(allOperators, file.Operators...)
		}
		return nil
	})

	return allOperators, err
}

func createSource(db *gorm.DB, sourceData SourceData) (*models.Source, bool, error) {
	var source models.Source
	if err := db.Where("name = ?", sourceData.Name).First(&source).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			source = models.Source{
				Name:        sourceData.Name,
				Description: sourceData.Description,
			}

			if err := db.Create(&source).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create source: %w", err)
			}
			return &source, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query source: %w", err)
	}

	return &source, false, nil // created = false (existing)
}

func createOperator(db *gorm.DB, operatorData OperatorData) (*models.Operator, bool, error) {
	var operator models.Operator
	if err := db.Where("name = ?", operatorData.Name).First(&operator).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			isActive := true
			if operatorData.IsActive != nil {
				isActive = *operatorData.IsActive
			}
			maxLoad := 10
			if operatorData.MaxLoad != nil {
				maxLoad = *operatorData.MaxLoad
			}

			operator = models.Operator{
				Name:     operatorData.Name,
				IsActive: isActive,
				MaxLoad:  maxLoad,
			}

			if err := db.Create(&operator).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create operator: %w", err)
			}
			return &operator, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query operator: %w", err)
	}

	return &operator, false, nil // created = false (existing)
}

func upsertWeight(db *gorm.DB, operator *models.Operator, source *models.Source, weight float64) (bool, error) {
	var row models.OperatorSourceWeight
	if err := db.Where("operator_id = ? AND source_id = ?", operator.ID, source.ID).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			row = models.OperatorSourceWeight{
				OperatorID: operator.ID,
				SourceID:   source.ID,
				Weight:     weight,
			}
			if err := db.Create(&row).Error; err != nil {
				return false, err
			}
			return true, nil
		}
		return false, err
	}

	row.Weight = weight
	if err := db.Save(&row).Error; err != nil {
		return false, err
	}
	return false, nil
}
