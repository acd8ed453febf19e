// Command migrate applies or rolls back the embedded SQL migrations.
//
//	migrate up
//	migrate down [steps]
package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"strconv"

	"paytrack/internal/db"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("db", os.Getenv("DB_ADDR"), "postgres connection string")
	flag.Parse()

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	logger := zl.Sugar()
	defer logger.Sync()

	if *addr == "" {
		logger.Fatal("DB_ADDR is required")
	}

	conn, err := sql.Open("postgres", *addr)
	if err != nil {
		logger.Fatalw("failed to open database", "error", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		logger.Fatalw("failed to reach database", "error", err)
	}

	cmd := "up"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	switch cmd {
	case "up":
		if err := db.Up(conn); err != nil {
			logger.Fatalw("migration failed", "error", err)
		}
		logger.Info("migrations applied")
	case "down":
		steps := 1
		if flag.NArg() > 1 {
			if steps, err = strconv.Atoi(flag.Arg(1)); err != nil || steps < 1 {
				logger.Fatalw("invalid step count", "steps", flag.Arg(1))
			}
		}
		if err := db.Down(conn, steps); err != nil {
			logger.Fatalw("rollback failed", "error", err)
		}
		logger.Infow("migrations rolled back", "steps", steps)
	default:
		logger.Fatalw("unknown command", "command", cmd)
	}
}
