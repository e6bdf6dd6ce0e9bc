// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/minimarket/backoffice-api/infrastructure/repository"
	"github.com/minimarket/backoffice-api/internal/config"
	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/minimarket/backoffice-api/internal/usecases/ranking"
	"github.com/sirupsen/logrus"
)

type BestSellerSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// BestSellerSnapshotService recalcula periodicamente o ranking de mais
// vendidos e persiste o resultado como snapshot posicionado
type BestSellerSnapshotService struct {
	scheduler           *gocron.Scheduler
	rankingService      ranking.RankingService
	snapshotRepo        repository.BestSellerSnapshotRepository
	config              BestSellerSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewBestSellerSnapshotService(
	rankingService ranking.RankingService,
	snapshotRepo repository.BestSellerSnapshotRepository,
	cfg *config.Config,
) *BestSellerSnapshotService {
	snapshotConfig := BestSellerSnapshotConfig{
		CronSchedule: cfg.BestSellerSnapshotSync.CronSchedule,
		Enabled:      cfg.BestSellerSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshot de mais vendidos carregada")

	return &BestSellerSnapshotService{
		scheduler:      scheduler,
		rankingService: rankingService,
		snapshotRepo:   snapshotRepo,
		config:         snapshotConfig,
	}
}

func (s *BestSellerSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot de mais vendidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot de mais vendidos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do snapshot de mais vendidos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de mais vendidos: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot de mais vendidos")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateSnapshot recalcula o ranking ao vivo e persiste as posições
func (s *BestSellerSnapshotService) UpdateSnapshot() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização de snapshot de mais vendidos já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização do snapshot de mais vendidos")

	entries, err := s.rankingService.GetBestSellers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular o ranking de mais vendidos")
		return err
	}

	if len(entries) == 0 {
		logrus.Info("Nenhuma venda registrada, snapshot não atualizado")
		return nil
	}

	items := s.buildSnapshotItems(entries)

	if err := s.snapshotRepo.SaveOrUpdateSnapshot(items); err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshot de mais vendidos")
		return err
	}

	logrus.WithField("items", len(items)).Info("Snapshot de mais vendidos atualizado")

	return nil
}

// buildSnapshotItems converte o ranking ao vivo em itens posicionados; a
// posição segue a ordem de chegada, que já vem decrescente por quantidade
func (s *BestSellerSnapshotService) buildSnapshotItems(entries []*domain.BestSellerEntry) []*domain.BestSellerSnapshotItem {
	items := make([]*domain.BestSellerSnapshotItem, 0, len(entries))

	for i, entry := range entries {
		productName := ""
		if entry.Name != nil {
			productName = *entry.Name
		}

		items = append(items, &domain.BestSellerSnapshotItem{
			ProductID:    entry.ProductID,
			ProductName:  productName,
			QuantitySold: entry.QuantitySold,
			Position:     i + 1,
		})
	}

	return items
}

// TriggerManualSync inicia manualmente uma sincronização do snapshot
func (s *BestSellerSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshot já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do snapshot de mais vendidos")
	go s.UpdateSnapshot()
}

// GetStatus retorna o status atual do agendador
func (s *BestSellerSnapshotService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
