package main

import (
	"context"
	"fmt"
	"log"

	"pawspace/internal/database"
	"pawspace/internal/domain"
	"pawspace/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local SQLite database with the room inventory and a demo
// customer account.
func main() {
	db, err := database.Connect("pawspace.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM meal_instructions")
	db.Exec("DELETE FROM boarding_pets")
	db.Exec("DELETE FROM grooming_pets")
	db.Exec("DELETE FROM pets")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM owners")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	rooms := repository.NewRoomRepository(db)

	log.Println("Creating rooms...")
	inventory := []struct {
		size  domain.RoomSize
		count int
	}{
		{domain.RoomSmall, 4},
		{domain.RoomMedium, 3},
		{domain.RoomLarge, 2},
	}
	for _, inv := range inventory {
		for i := 1; i <= inv.count; i++ {
			room := domain.Room{
				Name:     fmt.Sprintf("%s-%d", inv.size, i),
				Size:     inv.size,
				IsActive: true,
			}
			if err := rooms.Create(ctx, &room); err != nil {
				log.Fatal("room seed failed:", err)
			}
		}
	}

	log.Println("Creating demo user...")
	users := repository.NewUserRepository(db)
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := domain.User{
		Email:        "demo@pawspace.ph",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		Name:         "Demo Customer",
		Phone:        "09171234567",
	}
	if err := users.Create(ctx, &demo); err != nil {
		log.Fatal("user seed failed:", err)
	}

	log.Println("Seed complete: demo@pawspace.ph / demo1234")
}
