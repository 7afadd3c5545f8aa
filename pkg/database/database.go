package database

import (
	"fmt"
	"log"

	"error_book_backend/internal/config"
	"error_book_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate 迁移全部模型。外键级联依赖迁移生成的约束。
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.ErrorQuestion{},
		&model.AIAnalysis{},
		&model.KnowledgePoint{},
		&model.QuestionKnowledgeMapping{},
		&model.PracticeRecord{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}
