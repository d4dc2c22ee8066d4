package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Profile{},
		&Space{},
		&ProfileSpace{},
		&Group{},
		&Student{},
		&Missing{},
		&EventType{},
		&Event{},
		&EventStudent{},
		&StudentTransaction{},
		&Activity{},
		&ActivityGroup{},
		&GroupTransaction{},
	)
}
