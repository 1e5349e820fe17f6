package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMM1_ClassicParameters(t *testing.T) {
	// GIVEN mean interarrival 1 and mean service 0.5 (rho = 0.5)
	m, err := NewMM1(1.0, 0.5)
	require.NoError(t, err)

	// THEN the closed forms hold
	assert.True(t, m.Stable)
	assert.InDelta(t, 0.5, m.Rho, 1e-12)
	assert.InDelta(t, 0.5, m.Utilization, 1e-12)
	assert.InDelta(t, 0.5, m.AverageDelay, 1e-12)       // rho*Ts/(1-rho)
	assert.InDelta(t, 0.5, m.AverageQueueLength, 1e-12) // rho^2/(1-rho)
	assert.InDelta(t, 1.0, m.AverageInSystem, 1e-12)
	assert.InDelta(t, 1.0, m.AverageResponse, 1e-12)
}

func TestNewMM1_LittlesLaw(t *testing.T) {
	m, err := NewMM1(2.0, 1.5)
	require.NoError(t, err)

	lambda := 1 / 2.0
	assert.InDelta(t, lambda*m.AverageDelay, m.AverageQueueLength, 1e-12)
	assert.InDelta(t, lambda*m.AverageResponse, m.AverageInSystem, 1e-12)
}

func TestNewMM1_Unstable(t *testing.T) {
	m, err := NewMM1(1.0, 1.0)
	require.NoError(t, err)

	assert.False(t, m.Stable)
	assert.Equal(t, 1.0, m.Utilization)
	assert.True(t, math.IsInf(m.AverageDelay, 1))
	assert.True(t, math.IsInf(m.AverageQueueLength, 1))
}

func TestNewMM1_InvalidMeans(t *testing.T) {
	_, err := NewMM1(0, 1)
	assert.Error(t, err)
	_, err = NewMM1(1, -1)
	assert.Error(t, err)
}

func TestRelativeError(t *testing.T) {
	assert.InDelta(t, 0.1, RelativeError(1.1, 1.0), 1e-12)
	assert.InDelta(t, 0.2, RelativeError(-0.2, 0), 1e-12)
}
