package main

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/aquatech-store/internal/config"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"
	"github.com/aquatech-store/internal/service"
)

const seedBatchSize = 400

// seedProduct is the JSON shape of a catalog entry in the seed file.
type seedProduct struct {
	Slug        string   `json:"slug"`
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	SortOrder   int      `json:"sort_order"`
}

type seedAnnouncement struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	IsPinned bool   `json:"is_pinned"`
}

type seedFile struct {
	Products      []seedProduct      `json:"products"`
	Announcements []seedAnnouncement `json:"announcements"`
}

func main() {
	var file string
	flag.StringVar(&file, "file", "./data/catalog.json", "path to the seed data file")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		stdLog.Fatalf("failed to read seed file %s: %v", file, err)
	}
	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		stdLog.Fatalf("failed to parse seed file %s: %v", file, err)
	}

	productRepo := repository.NewProductRepository(models.DB)

	upserted := 0
	for i := 0; i < len(data.Products); i += seedBatchSize {
		end := i + seedBatchSize
		if end > len(data.Products) {
			end = len(data.Products)
		}
		for _, entry := range data.Products[i:end] {
			if strings.TrimSpace(entry.Slug) == "" {
				stdLog.Printf("skipping entry with empty slug: %s", entry.Name)
				continue
			}
			product := toProduct(entry)
			if err := productRepo.UpsertBySlug(product); err != nil {
				stdLog.Printf("failed to upsert product %s: %v", entry.Slug, err)
				continue
			}
			upserted++
		}
		stdLog.Printf("seeded products %d-%d", i, end)
	}
	stdLog.Printf("catalog seed done: %d products upserted", upserted)

	announcementService := service.NewAnnouncementService(repository.NewAnnouncementRepository(models.DB))
	for _, entry := range data.Announcements {
		var existing models.Announcement
		if err := models.DB.Where("title = ?", entry.Title).First(&existing).Error; err == nil {
			stdLog.Printf("announcement already exists: %s", entry.Title)
			continue
		}
		if _, err := announcementService.Create(entry.Title, entry.Body, entry.IsPinned); err != nil {
			stdLog.Printf("failed to create announcement %q: %v", entry.Title, err)
			continue
		}
		stdLog.Printf("created announcement: %s", entry.Title)
	}
}

func toProduct(entry seedProduct) *models.Product {
	kind := strings.TrimSpace(entry.Kind)
	if kind == "" {
		kind = "product"
	}
	return &models.Product{
		Slug:           entry.Slug,
		Kind:           kind,
		Name:           entry.Name,
		Category:       entry.Category,
		Price:          models.NewMoneyFromFloat(entry.Price),
		Rating:         entry.Rating,
		ImageURL:       entry.ImageURL,
		Description:    entry.Description,
		Features:       models.StringArray(entry.Features),
		SearchKeywords: deriveSearchKeywords(entry),
		IsActive:       true,
		SortOrder:      entry.SortOrder,
	}
}

// deriveSearchKeywords lowercases and dedupes the tokens of the name,
// category and features so the list endpoint can match loose queries.
func deriveSearchKeywords(entry seedProduct) models.StringArray {
	seen := map[string]bool{}
	var keywords []string
	add := func(text string) {
		for _, token := range strings.Fields(strings.ToLower(text)) {
			token = strings.Trim(token, ".,()+-")
			if len(token) < 2 || seen[token] {
				continue
			}
			seen[token] = true
			keywords = append(keywords, token)
		}
	}
	add(entry.Name)
	add(entry.Category)
	for _, feature := range entry.Features {
		add(feature)
	}
	return models.StringArray(keywords)
}
