package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/usergate/usergate/internal/model"
	"github.com/usergate/usergate/internal/repository"
)

type output struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// sampleUsers is a fixed data set spanning both sides of the age threshold.
var sampleUsers = []model.User{
	{Name: "Ana", Email: "ana@example.com", Age: 20},
	{Name: "Bo", Email: "bo@example.com", Age: 30},
	{Name: "Carla", Email: "carla@example.com", Age: 21},
	{Name: "Dev", Email: "dev@example.com", Age: 22},
	{Name: "Elena", Email: "elena@example.com", Age: 45},
	{Name: "Farid", Email: "farid@example.com", Age: 18},
}

func main() {
	var (
		mongoURI = flag.String("mongo-uri", os.Getenv("MONGO_URI"), "MongoDB connection string")
		database = flag.String("database", envOr("MONGO_DATABASE", "app"), "Database name")
		format   = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *mongoURI == "" {
		fmt.Fprintln(os.Stderr, "MONGO_URI is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *mongoURI, *database)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect document store:", err)
		os.Exit(1)
	}
	defer repo.Close(ctx)

	// Clear before inserting so reruns are idempotent
	if err := repo.DeleteAllUsers(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	inserted := make([]output, 0, len(sampleUsers))
	for i := range sampleUsers {
		user := sampleUsers[i]
		if err := repo.CreateUser(ctx, &user); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		inserted = append(inserted, output{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
			Age:   user.Age,
		})
	}

	if *format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(inserted); err != nil {
			fmt.Fprintln(os.Stderr, "encode output:", err)
			os.Exit(1)
		}
		return
	}

	for _, u := range inserted {
		fmt.Printf("%s  %-8s %-24s age=%d\n", u.ID, u.Name, u.Email, u.Age)
	}
	fmt.Printf("seeded %d users into %s.users\n", len(inserted), *database)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
