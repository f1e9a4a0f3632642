package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hqurve/tokmatch/token"
)

func TestBasicFactories(t *testing.T) {
	assert.True(t, Any()(token.NewLabel("whatever")))

	assert.True(t, Exact(token.NewInt(3))(token.NewInt(3)))
	assert.False(t, Exact(token.NewInt(3))(token.NewInt(4)))

	assert.True(t, Kind(token.Label)(token.NewLabel("x")))
	assert.False(t, Kind(token.Label)(token.NewSymbol(';')))

	assert.True(t, Not(Kind(token.Label))(token.NewSymbol(';')))

	assert.True(t, And(Kind(token.Number), NumberMode(token.Integer))(token.NewInt(5)))
	assert.False(t, And(Kind(token.Number), NumberMode(token.Integer))(token.NewDecimal(5)))

	assert.True(t, Or(LabelText("true"), LabelText("false"))(token.NewLabel("false")))
	assert.False(t, Or(LabelText("true"), LabelText("false"))(token.NewLabel("maybe")))
}

func TestSymbolIn(t *testing.T) {
	p := SymbolIn(";,")
	assert.True(t, p(token.NewSymbol(';')))
	assert.True(t, p(token.NewSymbol(',')))
	assert.False(t, p(token.NewSymbol('.')))
	assert.False(t, p(token.NewLabel(";")))
}

func TestOneOf(t *testing.T) {
	p := OneOf("if", "else", "while")
	assert.True(t, p(token.NewLabel("if")))
	assert.True(t, p(token.NewString("while", token.Strong)))
	assert.False(t, p(token.NewLabel("for")))
	assert.False(t, p(token.NewInt(1)))
}

func TestNumberRange(t *testing.T) {
	p := NumberRange([2]float64{1, 10}, [2]float64{100, 200})
	assert.True(t, p(token.NewInt(5)))
	assert.True(t, p(token.NewDecimal(150.5)))
	assert.False(t, p(token.NewInt(50)))
	assert.False(t, p(token.NewLabel("x")))

	// Boundaries are inclusive.
	assert.True(t, p(token.NewInt(1)))
	assert.True(t, p(token.NewInt(10)))
	assert.False(t, p(token.NewInt(11)))
}

func TestStringAndNumberMode(t *testing.T) {
	assert.True(t, StringMode(token.Strong)(token.NewString("x", token.Strong)))
	assert.False(t, StringMode(token.Strong)(token.NewString("x", token.Weak)))
	assert.True(t, NumberMode(token.Decimal)(token.NewDecimal(1)))
}
