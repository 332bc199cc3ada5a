package database

import (
	"fmt"
	"log"

	"todoapi/internal/models"

	"gorm.io/gorm"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	age INTEGER CHECK(age >= 0 AND age <= 120),
	city TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	completed BOOLEAN DEFAULT 0,
	priority TEXT CHECK(priority IN ('low', 'medium', 'high')) DEFAULT 'medium',
	user_id INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
)`

// Initialize creates the users and todos tables when missing and seeds demo
// rows into an empty store. Running it again is a no-op.
func Initialize(db *gorm.DB) error {
	log.Println("initializing database")

	if err := db.Exec(createUsersTable).Error; err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	if err := db.Exec(createTodosTable).Error; err != nil {
		return fmt.Errorf("create todos table: %w", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("empty database, seeding demo data")
	if err := db.Transaction(seed); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	return nil
}

func seed(tx *gorm.DB) error {
	users := []models.User{
		{Name: "Jan Kowalski", Email: "jan@example.com", Age: intPtr(25), City: strPtr("Warszawa")},
		{Name: "Anna Nowak", Email: "anna@example.com", Age: intPtr(30), City: strPtr("Kraków")},
		{Name: "Piotr Wiśniewski", Email: "piotr@example.com", Age: intPtr(28), City: strPtr("Gdańsk")},
	}
	for i := range users {
		if err := tx.Create(&users[i]).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].Email, err)
		}
	}

	todos := []models.Todo{
		{Title: "Nauka REST API", Description: strPtr("Dokończyć warsztaty z API"), UserID: &users[0].ID, Priority: models.PriorityHigh},
		{Title: "Projekt w Postmanie", Description: strPtr("Stworzyć kolekcję testów"), UserID: &users[0].ID, Priority: models.PriorityMedium, Completed: true},
		{Title: "Nauka SQLite", Description: strPtr("Poznać podstawy baz danych"), UserID: &users[1].ID, Priority: models.PriorityHigh},
	}
	for i := range todos {
		if err := tx.Create(&todos[i]).Error; err != nil {
			return fmt.Errorf("seed todo %q: %w", todos[i].Title, err)
		}
	}
	return nil
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
