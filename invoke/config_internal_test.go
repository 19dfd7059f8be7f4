package invoke

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilderRefusesGaps(t *testing.T) {
	b := newConfigBuilder()
	require.NoError(t, b.groups())
	require.NoError(t, b.algorithm(GMC))

	err := b.verbose(true)
	require.ErrorIs(t, err, ErrArity)
	var ae *ArgError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, posVerbose, ae.Pos)
	assert.Equal(t, "invoke: argument 4 (verbose): supplied without argument 3 (sparse)", ae.Error())

	require.ErrorIs(t, b.clusterWidth(1), ErrArity)
}

func TestConfigBuilderDefaultsAndOrder(t *testing.T) {
	b := newConfigBuilder()
	_, err := b.build()
	require.ErrorIs(t, err, ErrArity, "groups and algorithm are required")

	require.NoError(t, b.groups())
	require.NoError(t, b.algorithm(SGMC))
	require.NoError(t, b.sparse(true))

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, Config{Algorithm: SGMC, Sparse: true, Verbose: DefaultVerbose, ClusterWidth: DefaultClusterWidth}, cfg)

	// A slot cannot be filled twice.
	require.ErrorIs(t, b.sparse(false), ErrArity)
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm(1)
	require.NoError(t, err)
	assert.Equal(t, SGMC, a)
	assert.Equal(t, "SGMC", a.String())

	a, err = ParseAlgorithm(2)
	require.NoError(t, err)
	assert.Equal(t, "GMC", a.String())

	_, err = ParseAlgorithm(0)
	require.ErrorIs(t, err, ErrConfig)
	assert.Equal(t, "Algorithm(7)", Algorithm(7).String())
}

func TestSlotName(t *testing.T) {
	assert.Equal(t, "cluster width", slotName(posClusterWidth))
	assert.Equal(t, "?", slotName(0))
	assert.Equal(t, "?", slotName(MaxInputs+1))
}
