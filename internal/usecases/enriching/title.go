package enriching

import (
	"regexp"
	"strings"
)

// Padrões que indicam o fim da descrição essencial do produto: um descritor de
// quantidade/tamanho seguido de uma frase curta de cor/material, terminando na
// próxima vírgula. Ex.: "165 Pcs Holiday Red,"
var earlyStopPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+\s*(?:Pcs|Pack|Count|Piece|pc|pcs)\s+[A-Z][a-zA-Z\s]+),`),
	regexp.MustCompile(`(-\s*[A-Z][a-zA-Z\s]+\s+[A-Z][a-zA-Z\s]+),`),
}

// Delimitadores de "enchimento" de SEO, em ordem fixa. Entre as ocorrências
// com posição > 30, vence a mais à esquerda.
var cutoffPatterns = []string{
	" with ",
	", with ",
	" - Includes ",
	" for ",
	" | ",
	", Includes ",
	", Ideal for ",
	", Perfect for ",
	", Great for ",
}

var trailingPunctuation = regexp.MustCompile(`[,\-–—]+$`)

// minCutPosition protege o nome da marca no início do título
const minCutPosition = 30

// NormalizeTitle reduz títulos de marketing longos a uma forma exibível de até
// ~80 caracteres. Títulos com até 60 caracteres passam inalterados.
func NormalizeTitle(title string) string {
	if title == "" {
		return ""
	}

	if len(title) <= 60 {
		return title
	}

	for _, pattern := range earlyStopPatterns {
		loc := pattern.FindStringIndex(title)
		if loc != nil && loc[0] > minCutPosition {
			// Mantém tudo até o trecho casado, excluindo a vírgula final
			return strings.TrimSpace(title[:loc[1]-1])
		}
	}

	truncated := title
	cutoff := len(truncated)

	for _, pattern := range cutoffPatterns {
		pos := strings.Index(truncated, pattern)
		if pos > minCutPosition && pos < cutoff {
			cutoff = pos
		}
	}

	truncated = strings.TrimSpace(truncated[:cutoff])

	// Sem delimitador útil, corta por comprimento recuando até o limite de
	// palavra anterior quando ele existe depois do caractere 50
	if len(truncated) > 80 {
		truncated = truncated[:75]
		if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 50 {
			truncated = truncated[:lastSpace]
		}
	}

	return strings.TrimSpace(trailingPunctuation.ReplaceAllString(truncated, ""))
}
