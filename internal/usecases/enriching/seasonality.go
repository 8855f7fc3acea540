package enriching

import (
	"github.com/vfg2006/seller-insights-api/internal/domain"
)

// DefaultThemeSeasonality retorna os padrões de sazonalidade por tema, usados
// quando o produto não tem receita histórica para inferência.
func DefaultThemeSeasonality() map[string]string {
	return map[string]string{
		"CHRISTMAS":   domain.SeasonalityQ4,
		"HALLOWEEN":   domain.SeasonalityQ4,
		"GRADUATION":  domain.SeasonalityQ2,
		"VALENTINES":  domain.SeasonalityQ1,
		"EASTER":      domain.SeasonalityQ2,
		"JULY 4TH":    domain.SeasonalityQ3,
		"BABY SHOWER": domain.SeasonalityYearRound,
		"WEDDING":     domain.SeasonalityQ2,
		"BIRTHDAY":    domain.SeasonalityYearRound,
	}
}

// DefaultSeasonalityBadges retorna o glifo indicador de cada sazonalidade
func DefaultSeasonalityBadges() map[string]string {
	return map[string]string{
		domain.SeasonalityQ1:        "❄️",
		domain.SeasonalityQ2:        "🌸",
		domain.SeasonalityQ3:        "☀️",
		domain.SeasonalityQ4:        "🍂",
		domain.SeasonalityYearRound: "🔄",
	}
}

// SeasonalityEstimator classifica um produto como sazonal por trimestre ou
// de venda contínua, a partir da distribuição mensal de receita.
type SeasonalityEstimator struct {
	themeDefaults map[string]string
	badges        map[string]string
}

// NewSeasonalityEstimator cria um estimador com as tabelas informadas
func NewSeasonalityEstimator(themeDefaults, badges map[string]string) *SeasonalityEstimator {
	return &SeasonalityEstimator{
		themeDefaults: themeDefaults,
		badges:        badges,
	}
}

// Estimate soma os meses em trimestres e retorna o trimestre de pico quando ele
// concentra estritamente mais de 60% da receita total. Sem receita alguma, cai
// na tabela de padrões por tema. Empate entre trimestres mantém o primeiro na
// ordem Q1→Q4.
func (e *SeasonalityEstimator) Estimate(monthlyRevenue [12]float64, theme string) string {
	labels := []string{
		domain.SeasonalityQ1,
		domain.SeasonalityQ2,
		domain.SeasonalityQ3,
		domain.SeasonalityQ4,
	}

	var quarters [4]float64
	var total float64
	for month, revenue := range monthlyRevenue {
		quarters[month/3] += revenue
		total += revenue
	}

	if total == 0 {
		if fallback, ok := e.themeDefaults[theme]; ok {
			return fallback
		}
		return domain.SeasonalityYearRound
	}

	peak := 0
	for quarter := 1; quarter < len(quarters); quarter++ {
		if quarters[quarter] > quarters[peak] {
			peak = quarter
		}
	}

	if quarters[peak]/total > 0.6 {
		return labels[peak]
	}

	return domain.SeasonalityYearRound
}

// Badge retorna o glifo indicador da sazonalidade informada
func (e *SeasonalityEstimator) Badge(seasonality string) string {
	if badge, ok := e.badges[seasonality]; ok {
		return badge
	}
	return e.badges[domain.SeasonalityYearRound]
}
