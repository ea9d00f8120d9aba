// medicarectl is the operator CLI: it talks to the database directly,
// bypassing the API and its access control.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"medicare-api/internal/auth"
	"medicare-api/internal/config"
	"medicare-api/internal/model"
	"medicare-api/internal/store"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
	}

	cfg := config.Load()
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		fatal("db: %v", err)
	}
	defer pool.Close()

	st := store.New(pool)
	ctx := context.Background()

	switch os.Args[1] {
	case "seed":
		seed(ctx, st)
	case "reset-password":
		if len(os.Args) != 4 {
			fatal("usage: medicarectl reset-password <email> <newPassword>")
		}
		resetPassword(ctx, st, os.Args[2], os.Args[3])
	case "list-users":
		listUsers(ctx, st)
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: medicarectl <seed|reset-password|list-users>")
	os.Exit(1)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// seed creates the admin account and one sample doctor; existing
// accounts are left alone.
func seed(ctx context.Context, st *store.Store) {
	seedAdmin(ctx, st, "admin@medicare.pro", "Admin@123")
	seedDoctor(ctx, st, "doctor1@medicare.pro", "Doc@12345", "Dr. Aisha Khan", "Cardiology")
	fmt.Println("Seeded admin + sample doctor")
}

func seedAdmin(ctx context.Context, st *store.Store, email, password string) {
	if taken, err := st.EmailTaken(ctx, email); err != nil {
		fatal("seed: %v", err)
	} else if taken {
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fatal("seed: %v", err)
	}
	u := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := st.CreateUser(ctx, u); err != nil {
		fatal("seed: %v", err)
	}
}

func seedDoctor(ctx context.Context, st *store.Store, email, password, name, specialization string) {
	if taken, err := st.EmailTaken(ctx, email); err != nil {
		fatal("seed: %v", err)
	} else if taken {
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fatal("seed: %v", err)
	}
	u := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleDoctor,
	}
	d := &model.DoctorProfile{
		ID:             uuid.New().String(),
		UserID:         u.ID,
		Name:           name,
		Specialization: specialization,
	}
	if err := st.CreateDoctor(ctx, u, d); err != nil {
		fatal("seed: %v", err)
	}
}

func resetPassword(ctx context.Context, st *store.Store, email, newPass string) {
	u, err := st.UserByEmail(ctx, email)
	if err != nil {
		fatal("no user found with email: %s", email)
	}

	hash, err := auth.HashPassword(newPass)
	if err != nil {
		fatal("reset-password: %v", err)
	}
	if _, err := st.UpdatePassword(ctx, u.ID, hash); err != nil {
		fatal("reset-password: %v", err)
	}
	fmt.Printf("Password for %s has been reset\n", email)
}

func listUsers(ctx context.Context, st *store.Store) {
	users, err := st.ListUsers(ctx)
	if err != nil {
		fatal("list-users: %v", err)
	}

	fmt.Println("id, email, role, passwordType, createdAt")
	for _, u := range users {
		kind := "PLAINTEXT"
		if looksHashed(u.PasswordHash) {
			kind = "HASHED"
		}
		fmt.Printf("%s, %s, %s, %s, %s\n", u.ID, u.Email, u.Role, kind, u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	}
}

func looksHashed(pw string) bool {
	// bcrypt hashes start with $2a$, $2b$ or $2y$
	return strings.HasPrefix(pw, "$2a$") || strings.HasPrefix(pw, "$2b$") || strings.HasPrefix(pw, "$2y$")
}
