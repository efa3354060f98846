// Command seed-accounts inserts sample accounts for local development.
//
// Usage:
//
//	go run scripts/seed-accounts.go -database-url postgres://... -count 10
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var sampleNames = []string{
	"Ada Lovelace",
	"Grace Hopper",
	"Alan Turing",
	"Katherine Johnson",
	"Edsger Dijkstra",
	"Barbara Liskov",
	"Donald Knuth",
	"Margaret Hamilton",
}

func main() {
	_ = godotenv.Load()

	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		count       = flag.Int("count", 10, "Number of accounts to insert")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *count <= 0 {
		fmt.Fprintln(os.Stderr, "count must be positive")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}

	seedStamp := time.Now().UnixNano()

	for i := 0; i < *count; i++ {
		name := sampleNames[i%len(sampleNames)]
		email := fmt.Sprintf("seed-%d-%d@example.com", seedStamp, i)
		address := fmt.Sprintf("%d Example Street", 100+i)
		phone := fmt.Sprintf("555-01%02d", i%100)

		var id int64
		err := db.QueryRow(
			`INSERT INTO accounts (name, email, address, phone_number)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			name, email, address, phone,
		).Scan(&id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "insert account:", err)
			os.Exit(1)
		}

		fmt.Printf("created account %d (%s <%s>)\n", id, name, email)
	}

	fmt.Printf("seeded %d accounts\n", *count)
}
