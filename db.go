package main

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

func setupDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Product{},
		&entity.Sale{},
		&entity.Order{},
		&entity.Payment{},
		&entity.Supplier{},
		&entity.Purchase{},
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}
	return db
}
