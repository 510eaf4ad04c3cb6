package jobs

import (
	"context"
	"time"

	"goldcredit/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

const cleanInterval = 1 * time.Hour

type CompanyRepository interface {
	DeleteExpired(before int64) error
}

// CompanyCacheCleaner sweeps stale CNPJ lookup cache rows so registry
// data (and cached 404s) get re-fetched eventually.
type CompanyCacheCleaner struct {
	companyRepo CompanyRepository
	ttl         time.Duration
}

func NewCompanyCacheCleaner(repo CompanyRepository, ttl time.Duration) *CompanyCacheCleaner {
	return &CompanyCacheCleaner{companyRepo: repo, ttl: ttl}
}

func (c *CompanyCacheCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(cleanInterval)
	defer ticker.Stop()

	log.Info("Company cache cleaner started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping company cache cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *CompanyCacheCleaner) cleanup() {
	cutoff := utils.NowUTC() - c.ttl.Milliseconds()

	err := c.companyRepo.DeleteExpired(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired company cache: %v", err)
		return
	}

	log.Debugf("Cleaner: swept company caches older than %d", cutoff)
}
