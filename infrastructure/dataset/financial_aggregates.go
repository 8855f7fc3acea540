package dataset

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-insights-api/infrastructure/repository"
	"github.com/vfg2006/seller-insights-api/internal/config"
	"github.com/vfg2006/seller-insights-api/internal/domain"
)

// FinancialAggregateFile carrega o conjunto pré-existente de agregados
// financeiros por SKU a partir do artefato JSON da execução anterior.
type FinancialAggregateFile struct {
	cfg *config.Config
}

func NewFinancialAggregateFile(cfg *config.Config) *FinancialAggregateFile {
	return &FinancialAggregateFile{cfg: cfg}
}

// ListAggregates lê o arquivo configurado. Arquivo ausente ou ilegível é
// tratado como "sem dados existentes": o pipeline segue apenas com o
// histórico, sem erro.
func (f *FinancialAggregateFile) ListAggregates() ([]*domain.FinancialAggregate, error) {
	path := f.cfg.EnrichmentSync.ExistingDataPath

	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", path).Info("Arquivo de agregados financeiros não existe; seguindo sem dados existentes")
			return nil, nil
		}

		logrus.WithError(err).WithField("path", path).Warn("Não foi possível ler o arquivo de agregados financeiros")
		return nil, nil
	}

	var aggregates []*domain.FinancialAggregate
	if err := json.Unmarshal(payload, &aggregates); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("Arquivo de agregados financeiros inválido; seguindo sem dados existentes")
		return nil, nil
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"skus": len(aggregates),
	}).Info("Agregados financeiros existentes carregados")

	return aggregates, nil
}

// FinancialAggregateSource combina o repositório com o artefato JSON: o banco é
// a fonte primária e o arquivo cobre a primeira execução, antes de qualquer
// sincronização com a API do marketplace.
type FinancialAggregateSource struct {
	repository repository.FinancialAggregateRepository
	file       *FinancialAggregateFile
}

func NewFinancialAggregateSource(repo repository.FinancialAggregateRepository, cfg *config.Config) *FinancialAggregateSource {
	return &FinancialAggregateSource{
		repository: repo,
		file:       NewFinancialAggregateFile(cfg),
	}
}

func (s *FinancialAggregateSource) ListAggregates() ([]*domain.FinancialAggregate, error) {
	if s.repository != nil {
		aggregates, err := s.repository.ListAggregates()
		if err != nil {
			logrus.WithError(err).Warn("Erro ao carregar agregados financeiros do banco; tentando o arquivo")
		} else if len(aggregates) > 0 {
			return aggregates, nil
		}
	}

	return s.file.ListAggregates()
}
