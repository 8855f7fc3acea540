package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		status   FieldStatus
	}{
		{name: "número simples", input: "45", expected: 45, status: FieldParsed},
		{name: "moeda com milhar", input: "$1,234.50", expected: 1234.50, status: FieldParsed},
		{name: "negativo", input: "-12.5", expected: -12.5, status: FieldParsed},
		{name: "espaços ao redor", input: "  10  ", expected: 10, status: FieldParsed},
		{name: "campo vazio", input: "", expected: 0, status: FieldAbsent},
		{name: "só espaços", input: "   ", expected: 0, status: FieldAbsent},
		{name: "texto", input: "abc", expected: 0, status: FieldUnparsable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, status := ParseFloatField(tt.input)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestParseIntField(t *testing.T) {
	value, status := ParseIntField("10.9")
	assert.Equal(t, 10, value)
	assert.Equal(t, FieldParsed, status)

	value, status = ParseIntField("")
	assert.Zero(t, value)
	assert.Equal(t, FieldAbsent, status)

	value, status = ParseIntField("n/a")
	assert.Zero(t, value)
	assert.Equal(t, FieldUnparsable, status)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1234.57, RoundWithTwoDecimalPlace(1234.5678))
	assert.Equal(t, 10.0, RoundWithTwoDecimalPlace(10))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -2.35, RoundWithTwoDecimalPlace(-2.346))
}
