package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FieldStatus distingue os três estados de um campo numérico de entrada.
// Colapsar os três em zero mascara problemas de qualidade de dados, então o
// chamador decide o que contabilizar.
type FieldStatus int

const (
	FieldParsed FieldStatus = iota
	FieldAbsent
	FieldUnparsable
)

// ParseFloatField interpreta um campo numérico de planilha, aceitando separador
// de milhar e símbolo de moeda. Campo ausente ou inválido vale zero, com o
// status indicando qual dos casos ocorreu.
func ParseFloatField(raw string) (float64, FieldStatus) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, FieldAbsent
	}

	cleaned := strings.NewReplacer(",", "", "$", "").Replace(trimmed)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, FieldUnparsable
	}

	return value, FieldParsed
}

// ParseIntField interpreta um campo inteiro de planilha com as mesmas regras
// de ParseFloatField, truncando casas decimais quando presentes.
func ParseIntField(raw string) (int, FieldStatus) {
	value, status := ParseFloatField(raw)
	return int(value), status
}
