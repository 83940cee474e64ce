package osmrefreshworker

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"sailing-venues-backend/config"
	"sailing-venues-backend/lib/metrics"
	osmrefresh "sailing-venues-backend/lib/osm"
	"sailing-venues-backend/lib/smtp"
)

// StartWorker runs the periodic coordinate refresh documented by the
// venue lifecycle: only coordinates are revised, on a fixed schedule.
func StartWorker(ctx context.Context) {
	if config.Conf.Osm.RefreshEnabled == nil || !*config.Conf.Osm.RefreshEnabled {
		log.Info("coordinate refresh worker disabled")
		return
	}
	i := &impl{
		handler:     osmrefresh.Instance,
		notifyEmail: config.Conf.Smtp.NotifyEmail,
	}
	go i.run(ctx)
}

type impl struct {
	handler     osmrefresh.Provider
	notifyEmail string
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("worker_name", "CoordinateRefreshJob")
}

func (i impl) run(ctx context.Context) {
	period := time.Minute
	logger := i.getLogger()
	for {
		select {
		case <-ctx.Done():
			logger.Info("worker stopped")
			return
		case <-time.After(period):
			logger.Info("worker run started")
			i.handle(ctx)
			logger.Info("worker run finished")
		}
		period = time.Duration(config.Conf.Osm.RefreshPeriodMin) * time.Minute
	}
}

func (i impl) handle(ctx context.Context) {
	logger := i.getLogger()
	result, err := i.handler.RefreshCoordinates(ctx)
	if err != nil {
		metrics.RefreshRunsTotal.WithLabelValues("error").Inc()
		logger.WithError(err).Error("coordinate refresh failed")
		i.notify(err)
		return
	}
	metrics.RefreshRunsTotal.WithLabelValues("ok").Inc()
	logger.
		WithField("checked", result.Checked).
		WithField("refreshed", result.Refreshed).
		WithField("missing", result.Missing).
		WithField("skipped", result.Skipped).
		Info("coordinate refresh done")
}

func (i impl) notify(refreshErr error) {
	if i.notifyEmail == "" {
		return
	}
	message := fmt.Sprintf("Coordinate refresh from OSM failed: %v", refreshErr)
	if err := smtp.Instance.SendEMail(config.Conf.Smtp.User, i.notifyEmail, message, "coordinate refresh failed"); err != nil {
		i.getLogger().WithError(err).Error("failure notification mail not sent")
	}
}
