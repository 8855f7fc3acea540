package enriching

import (
	"regexp"
	"strings"
)

// ThemePattern associa um padrão de texto a um tema fixo do portfólio
type ThemePattern struct {
	Pattern *regexp.Regexp
	Theme   string
}

// DefaultThemePatterns retorna a tabela padrão de classificação temática.
// A ordem importa: o texto pode satisfazer mais de um padrão (ex.: "farm" como
// substring de palavra não relacionada) e o primeiro que casar vence.
func DefaultThemePatterns() []ThemePattern {
	return []ThemePattern{
		{regexp.MustCompile(`christmas|xmas|holiday decoration|santa|gingerbread|reindeer`), "CHRISTMAS"},
		{regexp.MustCompile(`halloween|spooky|pumpkin|witch|ghost|skeleton`), "HALLOWEEN"},
		{regexp.MustCompile(`graduat|grad |diploma|class of \d{4}`), "GRADUATION"},
		{regexp.MustCompile(`birthday|bday|hbd|happy birthday`), "BIRTHDAY"},
		{regexp.MustCompile(`baby shower|baby|newborn|infant`), "BABY SHOWER"},
		{regexp.MustCompile(`wedding|bride|groom|bridal|marriage`), "WEDDING"},
		{regexp.MustCompile(`valentine|love|heart|romance`), "VALENTINES"},
		{regexp.MustCompile(`easter|bunny|egg hunt|spring`), "EASTER"},
		{regexp.MustCompile(`4th july|independence|patriotic|usa|american flag`), "JULY 4TH"},
		{regexp.MustCompile(`unicorn|magical|fantasy`), "UNICORN"},
		{regexp.MustCompile(`rainbow|colorful`), "RAINBOW"},
		{regexp.MustCompile(`farm|barn|animal|cow|pig`), "FARM"},
		{regexp.MustCompile(`disco|party|celebration`), "PARTY"},
		{regexp.MustCompile(`sports|football|soccer|basketball`), "SPORTS"},
		{regexp.MustCompile(`princess|royal|crown`), "PRINCESS"},
		{regexp.MustCompile(`dinosaur|dino|prehistoric`), "DINOSAUR"},
		{regexp.MustCompile(`space|astronaut|rocket|galaxy`), "SPACE"},
		{regexp.MustCompile(`mermaid|ocean|underwater`), "MERMAID"},
		{regexp.MustCompile(`superhero|hero|marvel|dc`), "SUPERHERO"},
		{regexp.MustCompile(`tropical|luau|hawaii`), "TROPICAL"},
	}
}

// ThemeClassifier mapeia texto livre de produto para um tema fixo
type ThemeClassifier struct {
	patterns []ThemePattern
}

// NewThemeClassifier cria um classificador com a tabela de padrões informada.
// A tabela é injetada para permitir fixtures de teste.
func NewThemeClassifier(patterns []ThemePattern) *ThemeClassifier {
	return &ThemeClassifier{patterns: patterns}
}

// Classify concatena nome, título e MSKU do produto, normaliza a caixa e retorna
// o primeiro tema cujo padrão casar. Sem correspondência, retorna GENERAL.
func (c *ThemeClassifier) Classify(productName, title, msku string) string {
	text := strings.ToLower(productName + " " + title + " " + msku)

	for _, entry := range c.patterns {
		if entry.Pattern.MatchString(text) {
			return entry.Theme
		}
	}

	return "GENERAL"
}
