package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/minimarket/backoffice-api/infrastructure/database/postgres"
	"github.com/minimarket/backoffice-api/infrastructure/repository"
	"github.com/minimarket/backoffice-api/internal/api"
	"github.com/minimarket/backoffice-api/internal/config"
	"github.com/minimarket/backoffice-api/internal/scheduler"
	"github.com/minimarket/backoffice-api/internal/usecases/catalog"
	"github.com/minimarket/backoffice-api/internal/usecases/ranking"
	"github.com/minimarket/backoffice-api/internal/usecases/reporting"
	"github.com/minimarket/backoffice-api/internal/usecases/selling"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// Fuso horário da loja: governa o carimbo das vendas e o calendário do
	// relatório de lucros
	storeLocation, err := time.LoadLocation(cfg.Store.Timezone)
	if err != nil {
		logrus.WithError(err).Fatalf("Fuso horário inválido: %s", cfg.Store.Timezone)
	}

	categoryRepo := repository.NewCategoryRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	saleLineRepo := repository.NewSaleLineRepository(pgConn)
	bestSellerRepo := repository.NewBestSellerRepository(pgConn)
	bestSellerSnapshotRepo := repository.NewBestSellerSnapshotRepository(pgConn)

	catalogService := catalog.NewService(categoryRepo, productRepo)
	profitService := reporting.NewService(saleLineRepo, storeLocation)
	rankingService := ranking.NewBestSellerService(bestSellerRepo, productRepo, bestSellerSnapshotRepo)
	sellingService := selling.NewService(saleRepo, storeLocation)

	// Inicializa o agendador de snapshot de mais vendidos
	bestSellerSnapshotSyncService := scheduler.NewBestSellerSnapshotService(
		rankingService,
		bestSellerSnapshotRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := bestSellerSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de mais vendidos")
	} else {
		logrus.Info("Agendador de snapshot de mais vendidos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		catalogService,
		profitService,
		rankingService,
		sellingService,
		bestSellerSnapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
