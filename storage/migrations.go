package storage

import (
	"microblog/storage/models"

	"gorm.io/gorm"
)

type migration struct {
	apply  func(db *gorm.DB) error
	revert func(db *gorm.DB) error
}

var migrations = []migration{
	// 001
	{
		apply: func(db *gorm.DB) error {
			var tables = []interface{}{
				&models.User{}, &models.Post{}, &models.Like{},
				&models.Follow{}, &models.Comment{},
			}

			for _, table := range tables {
				if !db.Migrator().HasTable(table) {
					if err := db.Migrator().CreateTable(table); err != nil {
						return err
					}
				}
			}
			return nil
		},
		revert: func(db *gorm.DB) error {
			var tables = []interface{}{
				&models.Comment{}, &models.Follow{}, &models.Like{},
				&models.Post{}, &models.User{},
			}

			for _, table := range tables {
				if err := db.Migrator().DropTable(table); err != nil {
					return err
				}
			}
			return nil
		},
	},
}

func Migrate(db *gorm.DB) error {
	for _, m := range migrations {
		if err := m.apply(db); err != nil {
			return err
		}
	}
	return nil
}

func Revert(db *gorm.DB) error {
	for i := len(migrations) - 1; i >= 0; i-- {
		if err := migrations[i].revert(db); err != nil {
			return err
		}
	}
	return nil
}
