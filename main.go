package main

import (
	"fmt"
	"os"

	"sales_report/api"
	"sales_report/internal/config"
	"sales_report/internal/dataset"
	"sales_report/internal/logger"
	"sales_report/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.InitConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(fmt.Errorf("error loading config: %v", err))
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("error building logger: %v", err))
	}
	defer log.Sync()
	log.Info("config loaded", zap.Stringer("config", cfg))

	client := dataset.NewClient(cfg.Dataset.Timeout)
	defer client.Close()

	salesService := sales.NewService(sales.NewLocalStorage(), client, log, cfg.Strategies.Revenue, cfg.Strategies.Bonus)

	if cfg.Dataset.Path != "" {
		preload(salesService, cfg.Dataset.Path, log)
	}

	r := gin.Default()
	api.InitRoutes(r, salesService, log)

	if err := r.Run(cfg.Address); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}

// preload analyzes the startup dataset so its report is available right away.
func preload(svc *sales.Service, path string, log *zap.Logger) {
	data, err := dataset.LoadFile(path)
	if err != nil {
		log.Error("failed to load startup dataset", zap.String("path", path), zap.Error(err))
		return
	}

	report, err := svc.GenerateReport(data, "", "")
	if err != nil {
		log.Error("failed to analyze startup dataset", zap.String("path", path), zap.Error(err))
		return
	}

	top := report.Entries[0]
	log.Info("startup report ready",
		zap.String("report_id", report.ID),
		zap.String("top_seller", top.Name),
		zap.Float64("top_profit", top.Profit),
		zap.Float64("top_bonus", top.Bonus),
	)
}
