package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Sumit21adm/School-Management-System-sub003/app/config"
	"github.com/Sumit21adm/School-Management-System-sub003/app/database"
	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "email address for the new user")
	password := flag.String("password", "", "password for the new user")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "User", "last name")
	role := flag.String("role", "admin", "user role")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> [-first-name ...] [-last-name ...] [-role ...]")
		os.Exit(1)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      *role,
		IsActive:  true,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
