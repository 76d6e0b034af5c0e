package logging

import (
	"context"
	"errors"
	"time"

	"github.com/OriDaer/Portfolio/internal/config"
	"github.com/OriDaer/Portfolio/internal/repositories"

	"go.uber.org/zap"
)

// RetentionSweeper periodically deletes audit log rows older than the
// configured retention window.
type RetentionSweeper struct {
	cfg       *config.Config
	auditRepo repositories.AuditRepository
	logger    *zap.Logger
	ticker    *time.Ticker
	stopChan  chan struct{}
	isRunning bool
}

// NewRetentionSweeper creates a new RetentionSweeper instance.
func NewRetentionSweeper(cfg *config.Config, auditRepo repositories.AuditRepository, logger *zap.Logger) *RetentionSweeper {
	return &RetentionSweeper{
		cfg:       cfg,
		auditRepo: auditRepo,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the sweep loop in a separate goroutine.
func (s *RetentionSweeper) Start() {
	if s.isRunning {
		s.logger.Warn("Audit retention sweeper already running")
		return
	}
	s.ticker = time.NewTicker(s.cfg.AuditSweepInterval)
	s.isRunning = true
	go s.run()
	s.logger.Info("Audit retention sweeper started",
		zap.Duration("interval", s.cfg.AuditSweepInterval),
		zap.Int("retention_days", s.cfg.AuditRetentionDays),
	)
}

// Stop signals the sweep loop to terminate gracefully and runs one last sweep.
func (s *RetentionSweeper) Stop() {
	if !s.isRunning {
		s.logger.Warn("Audit retention sweeper not running")
		return
	}
	s.logger.Info("Stopping audit retention sweeper...")
	select {
	case <-s.stopChan:
		// Already closed
	default:
		close(s.stopChan)
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.isRunning = false

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.sweep(shutdownCtx)
	s.logger.Info("Audit retention sweeper stopped.")
}

// run is the main loop that periodically sweeps expired rows.
func (s *RetentionSweeper) run() {
	for {
		select {
		case <-s.ticker.C:
			select {
			case <-s.stopChan:
				s.logger.Info("Stop signal received before sweep tick, exiting loop.")
				return
			default:
			}
			tickCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			s.sweep(tickCtx)
			cancel()
		case <-s.stopChan:
			s.logger.Info("Received stop signal, exiting audit sweep loop.")
			return
		}
	}
}

// sweep deletes audit rows older than the retention cutoff.
func (s *RetentionSweeper) sweep(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.AuditRetentionDays)
	deleted, err := s.auditRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.logger.Info("Context cancelled/timed out during audit sweep.", zap.Error(err))
		} else {
			s.logger.Error("Failed to sweep expired audit log rows", zap.Error(err))
		}
		return
	}
	if deleted > 0 {
		s.logger.Info("Swept expired audit log rows",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff),
		)
	} else {
		s.logger.Debug("No expired audit log rows to sweep")
	}
}
