package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	staticcatalog "quackmate/internal/adapter/catalog/static"
	httpadapter "quackmate/internal/adapter/http"
	metricsinmem "quackmate/internal/adapter/metrics/inmemory"
	gormrepo "quackmate/internal/adapter/repo/gorm"
	"quackmate/internal/app/auth"
	"quackmate/internal/app/flock"
	"quackmate/internal/app/history"
	"quackmate/internal/app/minigame"
	"quackmate/internal/app/petcare"
	"quackmate/internal/app/ports"
	"quackmate/internal/app/shop"
	"quackmate/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	pets, accounts, sessions, events, txManager := mustBuildRepos()
	catalog := mustBuildCatalog()
	kpiRecorder := metricsinmem.NewRecorder()
	jwtSecret := mustJWTSecret()

	care := pet.CareService{DecayRate: intEnv("QUACKMATE_DECAY_RATE", 0)}
	roll := rand.Float64

	h := httpadapter.Handler{
		RegisterUC:   auth.RegisterUseCase{Accounts: accounts, Pets: pets, TxManager: txManager, Now: time.Now},
		LoginUC:      auth.LoginUseCase{Accounts: accounts, JWTSecret: jwtSecret, Now: time.Now},
		DeactivateUC: auth.DeactivateUseCase{Accounts: accounts},
		Verifier:     auth.TokenVerifier{JWTSecret: jwtSecret},

		ListUC:   flock.ListUseCase{Pets: pets, Care: care},
		GetUC:    flock.GetUseCase{Pets: pets, Care: care},
		CreateUC: flock.CreateUseCase{Pets: pets, Now: time.Now},

		CareUC: petcare.UseCase{
			TxManager: txManager,
			Pets:      pets,
			Accounts:  accounts,
			Events:    events,
			Catalog:   catalog,
			Metrics:   kpiRecorder,
			Care:      care,
			Now:       time.Now,
			Roll:      roll,
		},

		FinishUC: minigame.FinishUseCase{
			TxManager: txManager,
			Pets:      pets,
			Accounts:  accounts,
			Sessions:  sessions,
			Events:    events,
			Metrics:   kpiRecorder,
			Care:      care,
			Now:       time.Now,
			Roll:      roll,
		},
		GameHistory:  minigame.HistoryUseCase{Sessions: sessions},
		HighScoresUC: minigame.HighScoresUseCase{Sessions: sessions},

		BuyUC:   shop.BuyUseCase{Accounts: accounts, Catalog: catalog},
		EquipUC: shop.EquipHatUseCase{Accounts: accounts, Pets: pets, Catalog: catalog, Now: time.Now},

		HistoryUC: history.UseCase{Pets: pets, Events: events},

		Catalog: catalog,
		KPI:     kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("QUACKMATE_ADDR"))
	if addr == "" {
		addr = ":8080"
	}

	s := server.Default(server.WithHostPorts(addr))
	s.Use(httpadapter.CORSMiddleware())
	h.RegisterRoutes(s)

	log.Printf("quackmate server listening on %s", addr)
	s.Spin()
}

func mustBuildRepos() (ports.PetRepository, ports.AccountRepository, ports.GameSessionRepository, ports.EventRepository, ports.TxManager) {
	dsn := os.Getenv("QUACKMATE_DB_DSN")
	if dsn == "" {
		log.Fatal("QUACKMATE_DB_DSN is required")
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	migrationsDir := strings.TrimSpace(os.Getenv("QUACKMATE_MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = "./migrations"
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	return gormrepo.NewPetRepo(db), gormrepo.NewAccountRepo(db), gormrepo.NewGameSessionRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

func mustBuildCatalog() ports.CatalogProvider {
	path := strings.TrimSpace(os.Getenv("QUACKMATE_CATALOG_FILE"))
	if path == "" {
		return staticcatalog.NewDefault()
	}
	provider, err := staticcatalog.NewFromFile(path)
	if err != nil {
		log.Fatalf("load catalog %s: %v", path, err)
	}
	return provider
}

func mustJWTSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("QUACKMATE_JWT_SECRET"))
	if secret == "" {
		log.Fatal("QUACKMATE_JWT_SECRET is required")
	}
	return []byte(secret)
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
