package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	handler "github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/adapters/handler/http"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/adapters/repository/postgres"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Println("Warning: JWT_SECRET not set")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	clock := ports.NewSystemClock()

	pollRepo := postgres.NewPollRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	suggestionRepo := postgres.NewSuggestionRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	muteRepo := postgres.NewMuteRepository(db)
	userRepo := postgres.NewUserRepository(db)

	muteSvc := services.NewMuteService(muteRepo, userRepo, clock)
	pollSvc := services.NewPollService(pollRepo, voteRepo, clock)
	voteSvc := services.NewVoteService(pollRepo, voteRepo, clock)
	suggestionSvc := services.NewSuggestionService(suggestionRepo, muteSvc, clock)
	reportSvc := services.NewReportService(reportRepo, suggestionRepo, clock)
	userSvc := services.NewUserService(userRepo)

	router := handler.NewHandler(handler.Handlers{
		Poll:       handler.NewPollHandler(pollSvc),
		Vote:       handler.NewVoteHandler(voteSvc),
		Suggestion: handler.NewSuggestionHandler(suggestionSvc),
		Report:     handler.NewReportHandler(reportSvc),
		Mute:       handler.NewMuteHandler(muteSvc),
		User:       handler.NewUserHandler(userSvc),
	}, []byte(jwtSecret))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &stdhttp.Server{Addr: "0.0.0.0:" + port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func dbConnString() string {
	dbName := os.Getenv("POSTGRES_DB")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
