package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aquatech-store/internal/config"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"

	"github.com/google/uuid"
)

// upload-images copies catalog images into the upload directory and
// back-fills each matching product's image_url. Files are matched to
// products by name, so "Pocket TDS Meter.png" attaches to the product
// named "Pocket TDS Meter".
func main() {
	var srcDir string
	flag.StringVar(&srcDir, "dir", "./images", "directory holding the image files")
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
		stdLog.Fatalf("database init failed: %v", err)
	}

	uploadDir := strings.TrimSpace(cfg.Upload.Dir)
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		stdLog.Fatalf("failed to create upload dir %s: %v", uploadDir, err)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		stdLog.Fatalf("failed to read image dir %s: %v", srcDir, err)
	}

	productRepo := repository.NewProductRepository(models.DB)
	attached := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !extensionAllowed(name, cfg.Upload.AllowedExtensions) {
			stdLog.Printf("skipping %s: extension not allowed", name)
			continue
		}
		if info, err := entry.Info(); err == nil && cfg.Upload.MaxSize > 0 && info.Size() > cfg.Upload.MaxSize {
			stdLog.Printf("skipping %s: exceeds max size", name)
			continue
		}

		productName := strings.TrimSuffix(name, filepath.Ext(name))
		var product models.Product
		if err := models.DB.Where("name = ?", productName).First(&product).Error; err != nil {
			stdLog.Printf("skipping %s: no product named %q", name, productName)
			continue
		}

		if err := copyFile(filepath.Join(srcDir, name), filepath.Join(uploadDir, name)); err != nil {
			stdLog.Printf("failed to copy %s: %v", name, err)
			continue
		}

		imageURL := fmt.Sprintf("/uploads/%s?token=%s", name, uuid.NewString())
		if err := productRepo.UpdateImageURL(product.Slug, imageURL); err != nil {
			stdLog.Printf("failed to update image url for %s: %v", product.Slug, err)
			continue
		}
		attached++
		stdLog.Printf("attached %s to %s", name, product.Slug)
	}
	stdLog.Printf("image upload done: %d images attached", attached)
}

func extensionAllowed(name string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, candidate := range allowed {
		if strings.ToLower(strings.TrimPrefix(candidate, ".")) == ext {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
