package main

import (
	"flag"

	"github.com/aquatech-store/internal/config"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"
)

const (
	purgePageSize  = 500
	legacyPageSize = 200
)

// purge permanently removes order and booking history. It walks the
// tables in keyset pages, then runs a per-user pass that catches rows
// written by older releases without a global index.
func main() {
	var dryRun bool
	flag.BoolVar(&dryRun, "dry-run", false, "count rows without deleting")
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

	orderRepo := repository.NewOrderRepository(models.DB)
	bookingRepo := repository.NewBookingRepository(models.DB)

	orders := purgeOrders(orderRepo, dryRun)
	bookings := purgeBookings(bookingRepo, dryRun)
	legacyOrders, legacyBookings := purgeLegacyPerUser(orderRepo, bookingRepo, dryRun)

	stdLog.Printf("purge done: orders=%d bookings=%d legacy_orders=%d legacy_bookings=%d dry_run=%v",
		orders, bookings, legacyOrders, legacyBookings, dryRun)
}

func purgeOrders(repo repository.OrderRepository, dryRun bool) int64 {
	stdLog := logger.StdLogger()
	var total int64
	lastID := uint(0)
	for {
		page, err := repo.ListPage(repository.PageFilter{Limit: purgePageSize, LastID: lastID})
		if err != nil {
			stdLog.Printf("order page after id %d failed: %v", lastID, err)
			return total
		}
		if len(page) == 0 {
			return total
		}
		ids := make([]uint, 0, len(page))
		for _, order := range page {
			ids = append(ids, order.ID)
		}
		lastID = ids[len(ids)-1]
		if dryRun {
			total += int64(len(ids))
			continue
		}
		deleted, err := repo.HardDelete(ids)
		if err != nil {
			stdLog.Printf("order delete page failed: %v", err)
			return total
		}
		total += deleted
	}
}

func purgeBookings(repo repository.BookingRepository, dryRun bool) int64 {
	stdLog := logger.StdLogger()
	var total int64
	lastID := uint(0)
	for {
		page, err := repo.ListPage(repository.PageFilter{Limit: purgePageSize, LastID: lastID})
		if err != nil {
			stdLog.Printf("booking page after id %d failed: %v", lastID, err)
			return total
		}
		if len(page) == 0 {
			return total
		}
		ids := make([]uint, 0, len(page))
		for _, booking := range page {
			ids = append(ids, booking.ID)
		}
		lastID = ids[len(ids)-1]
		if dryRun {
			total += int64(len(ids))
			continue
		}
		deleted, err := repo.HardDelete(ids)
		if err != nil {
			stdLog.Printf("booking delete page failed: %v", err)
			return total
		}
		total += deleted
	}
}

// purgeLegacyPerUser walks users in pages and deletes any orders or
// bookings still attached to them. The table passes above already cover
// indexed rows; this pass exists for data imported before the global
// tables had consistent ids.
func purgeLegacyPerUser(orderRepo repository.OrderRepository, bookingRepo repository.BookingRepository, dryRun bool) (int64, int64) {
	stdLog := logger.StdLogger()
	var orderTotal, bookingTotal int64
	lastID := uint(0)
	for {
		var users []models.User
		if err := models.DB.Where("id > ?", lastID).Order("id asc").Limit(legacyPageSize).Find(&users).Error; err != nil {
			stdLog.Printf("user page after id %d failed: %v", lastID, err)
			return orderTotal, bookingTotal
		}
		if len(users) == 0 {
			return orderTotal, bookingTotal
		}
		for _, user := range users {
			orders, err := orderRepo.ListByUser(user.ID)
			if err != nil {
				stdLog.Printf("list orders for user %d failed: %v", user.ID, err)
			} else if len(orders) > 0 {
				ids := make([]uint, 0, len(orders))
				for _, order := range orders {
					ids = append(ids, order.ID)
				}
				if dryRun {
					orderTotal += int64(len(ids))
				} else if deleted, err := orderRepo.HardDelete(ids); err != nil {
					stdLog.Printf("delete orders for user %d failed: %v", user.ID, err)
				} else {
					orderTotal += deleted
				}
			}

			bookings, err := bookingRepo.ListByUser(user.ID)
			if err != nil {
				stdLog.Printf("list bookings for user %d failed: %v", user.ID, err)
			} else if len(bookings) > 0 {
				ids := make([]uint, 0, len(bookings))
				for _, booking := range bookings {
					ids = append(ids, booking.ID)
				}
				if dryRun {
					bookingTotal += int64(len(ids))
				} else if deleted, err := bookingRepo.HardDelete(ids); err != nil {
					stdLog.Printf("delete bookings for user %d failed: %v", user.ID, err)
				} else {
					bookingTotal += deleted
				}
			}
		}
		lastID = users[len(users)-1].ID
	}
}
