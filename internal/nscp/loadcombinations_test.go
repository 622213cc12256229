package nscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoverning_Simplified(t *testing.T) {
	v, combo := Governing(LoadComponents{Dead: 50, Live: 30}, SimplifiedCombinations)
	assert.Equal(t, "2", combo.ID)
	assert.InDelta(t, 1.2*50+1.6*30, v, 1e-9)
}

func TestGoverning_DeadOnly(t *testing.T) {
	v, combo := Governing(LoadComponents{Dead: 10}, LoadCombinations)
	assert.Equal(t, "1.4D", combo.Description)
	assert.InDelta(t, 14.0, v, 1e-9)
}

func TestGoverning_Wind(t *testing.T) {
	c := LoadComponents{Dead: 10, Live: 5, Wind: 20}
	v, combo := Governing(c, LoadCombinations)
	// 1.2D + 1.0W + 1.0L = 12 + 20 + 5
	assert.Equal(t, "4", combo.ID)
	assert.InDelta(t, 37.0, v, 1e-9)
}

func TestGoverning_NoComponents(t *testing.T) {
	v, combo := Governing(LoadComponents{}, LoadCombinations)
	assert.Equal(t, 0.0, v)
	assert.Empty(t, combo.ID)
	assert.True(t, LoadComponents{}.IsZero())
	assert.False(t, LoadComponents{Rain: 1}.IsZero())
}

func TestFactored(t *testing.T) {
	c := LoadComponents{Dead: 1, Live: 1, Roof: 1, Wind: 1, Earthquake: 1, Rain: 1}
	assert.InDelta(t, 1.2+1.6+0.5+0.5, LoadCombinations[1].Factored(c), 1e-12)
	assert.InDelta(t, 0.9+1.0, LoadCombinations[6].Factored(c), 1e-12)
}
