package initializers

import (
	"context"
	"time"

	"sailing-venues-backend/config"
	"sailing-venues-backend/fiberlog"
	"sailing-venues-backend/lib/dataquality"
	exporthandler "sailing-venues-backend/lib/export"
	sqldumpexport "sailing-venues-backend/lib/export/sqldump"
	xlsexport "sailing-venues-backend/lib/export/xls"
	filestorage "sailing-venues-backend/lib/file-storage"
	osmrefresh "sailing-venues-backend/lib/osm"
	osmclient "sailing-venues-backend/lib/osm/client"
	osmrefreshworker "sailing-venues-backend/lib/osm/refresh-worker"
	venueprovider "sailing-venues-backend/lib/venue"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	osmclient.NewProvider(osmclient.Options{
		BaseURL:       config.Conf.Osm.OverpassURL,
		UserAgent:     config.Conf.Osm.UserAgent,
		RatePerSecond: config.Conf.Osm.RatePerSecond,
		RateBurst:     config.Conf.Osm.RateBurst,
		CacheSize:     config.Conf.Osm.CacheSize,
		CacheTTL:      time.Duration(config.Conf.Osm.CacheTTLMin) * time.Minute,
	})
	filestorage.NewHandler()
	venueprovider.NewHandler()
	dataquality.NewHandler()
	osmrefresh.NewHandler()
	xlsexport.NewHandler()
	sqldumpexport.NewHandler()
	exporthandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// periodic coordinate refresh from OSM
	osmrefreshworker.StartWorker(ctx)
}
