package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"weddingplanner/internal/auth"
	"weddingplanner/internal/config"
	"weddingplanner/internal/db"
	apperrors "weddingplanner/internal/errors"
	"weddingplanner/internal/logger"
	"weddingplanner/internal/model"
	"weddingplanner/internal/service"
)

// seedConfig holds the seed-only settings.
type seedConfig struct {
	Source  string        `envconfig:"SEED_SOURCE" default:"cmd/seed/fixture.json"`
	Timeout time.Duration `envconfig:"SEED_TIMEOUT" default:"30s"`
}

// SeedUser is the demo account a fixture is loaded into.
type SeedUser struct {
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	FullName    string     `json:"full_name"`
	WeddingDate *time.Time `json:"wedding_date"`
	PartnerName *string    `json:"partner_name"`
}

// Fixture is the seed file layout.
type Fixture struct {
	User    SeedUser       `json:"user"`
	Budgets []model.Budget `json:"budgets"`
	Guests  []model.Guest  `json:"guests"`
	Vendors []model.Vendor `json:"vendors"`
	Tasks   []model.Task   `json:"tasks"`
	Venues  []model.Venue  `json:"venues"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	var seedCfg seedConfig
	if err := envconfig.Process("", &seedCfg); err != nil {
		log.Error("seed config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedCfg.Timeout)
	defer cancel()

	log.Info("loading fixture", "source", seedCfg.Source)
	fixture, err := loadFixture(ctx, seedCfg.Source)
	if err != nil {
		log.Error("load fixture", "error", err)
		os.Exit(1)
	}

	repos, closeStore, err := db.Open(ctx, cfg)
	if err != nil {
		log.Error("store init", "error", err)
		os.Exit(1)
	}
	defer closeStore(context.Background())

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		log.Error("password hasher", "error", err)
		os.Exit(1)
	}
	authService := service.NewAuthService(repos.Users, hasher, auth.NewJWTService(cfg.JWTSecret), cfg.TokenTTL, log)
	records := service.NewRecordServices(repos, cfg.ListLimit, log)

	counts, err := seed(ctx, authService, records, fixture)
	if err != nil {
		log.Error("seed failed", "error", err, "created", counts)
		os.Exit(1)
	}
	log.Info("seed completed", "email", fixture.User.Email, "created", counts)
}

// loadFixture reads a fixture from a local path or an http(s) URL.
func loadFixture(ctx context.Context, source string) (*Fixture, error) {
	var body []byte
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch fixture: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fixture source returned status: %d", resp.StatusCode)
		}
		if body, err = io.ReadAll(resp.Body); err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
	} else {
		var err error
		if body, err = os.ReadFile(source); err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
	}

	var fixture Fixture
	if err := json.Unmarshal(body, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if fixture.User.Email == "" || fixture.User.Password == "" {
		return nil, errors.New("fixture user needs an email and a password")
	}
	return &fixture, nil
}

// seed registers the fixture user, or logs in when it already exists, and
// creates every record for it. Each record is created exactly once.
func seed(ctx context.Context, authService service.AuthService, records *service.RecordServices, f *Fixture) (map[string]int, error) {
	counts := make(map[string]int, len(model.Kinds))

	token, _, err := authService.Register(ctx, f.User.Email, f.User.Password, model.Profile{
		FullName:    f.User.FullName,
		WeddingDate: f.User.WeddingDate,
		PartnerName: f.User.PartnerName,
	})
	if errors.Is(err, apperrors.ErrDuplicateIdentity) {
		token, err = authService.Login(ctx, f.User.Email, f.User.Password)
	}
	if err != nil {
		return counts, fmt.Errorf("sign in %s: %w", f.User.Email, err)
	}

	user, err := authService.Authenticate(ctx, token)
	if err != nil {
		return counts, fmt.Errorf("resolve seed user: %w", err)
	}

	steps := []func() error{
		func() error { return createAll(ctx, records.Budgets, user.ID, f.Budgets, counts) },
		func() error { return createAll(ctx, records.Guests, user.ID, f.Guests, counts) },
		func() error { return createAll(ctx, records.Vendors, user.ID, f.Vendors, counts) },
		func() error { return createAll(ctx, records.Tasks, user.ID, f.Tasks, counts) },
		func() error { return createAll(ctx, records.Venues, user.ID, f.Venues, counts) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return counts, err
		}
	}
	return counts, nil
}

func createAll[T any](ctx context.Context, svc service.RecordService[T], ownerID string, items []T, counts map[string]int) error {
	kind := svc.Kind()
	for i := range items {
		if _, err := svc.Create(ctx, ownerID, &items[i]); err != nil {
			return fmt.Errorf("create %s #%d: %w", kind.Collection, i, err)
		}
		counts[kind.Collection]++
	}
	return nil
}
