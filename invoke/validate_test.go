package invoke_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/groupmix/engine"
	"github.com/katalvlaran/groupmix/hostarray"
	"github.com/katalvlaran/groupmix/invoke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireArgError asserts err is an *ArgError of the given kind and position.
func requireArgError(t *testing.T, err error, kind error, pos int) *invoke.ArgError {
	t.Helper()
	require.ErrorIs(t, err, kind)
	var ae *invoke.ArgError
	require.True(t, errors.As(err, &ae), "want *ArgError, got %T: %v", err, err)
	require.Equal(t, pos, ae.Pos, "error: %v", err)

	return ae
}

func TestValidateInputArity(t *testing.T) {
	args := append(validArgs(t, 5), hostarray.Scalar(1), hostarray.Scalar(2))
	for _, n := range []int{0, 1, 6, 7} {
		_, err := invoke.Validate(args[:n]...)
		require.ErrorIs(t, err, invoke.ErrArity, "n=%d", n)
	}
}

func TestValidateDefaultsPerArity(t *testing.T) {
	tests := []struct {
		n    int
		want invoke.Config
	}{
		{2, invoke.Config{Algorithm: invoke.SGMC, Sparse: false, Verbose: false, ClusterWidth: 0.01}},
		{3, invoke.Config{Algorithm: invoke.SGMC, Sparse: true, Verbose: false, ClusterWidth: 0.01}},
		{4, invoke.Config{Algorithm: invoke.SGMC, Sparse: true, Verbose: true, ClusterWidth: 0.01}},
		{5, invoke.Config{Algorithm: invoke.SGMC, Sparse: true, Verbose: true, ClusterWidth: 0.5}},
	}
	for _, tc := range tests {
		req, err := invoke.Validate(validArgs(t, tc.n)...)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.want, req.Config, "n=%d", tc.n)
	}
}

func TestValidateTrailingAbsentSlotsTrimmed(t *testing.T) {
	args := append(validArgs(t, 3), nil, nil)
	req, err := invoke.Validate(args...)
	require.NoError(t, err)
	assert.True(t, req.Config.Sparse)
	assert.Equal(t, invoke.DefaultClusterWidth, req.Config.ClusterWidth)
}

func TestValidateCascadeGap(t *testing.T) {
	args := validArgs(t, 5)
	args[2] = nil // sparse absent, verbose and width present
	ae := requireArgError(t, func() error { _, err := invoke.Validate(args...); return err }(), invoke.ErrArity, 4)
	assert.Contains(t, ae.Reason, "without argument 3 (sparse)")

	args = validArgs(t, 5)
	args[3] = nil // verbose absent, width present
	requireArgError(t, func() error { _, err := invoke.Validate(args...); return err }(), invoke.ErrArity, 5)
}

func TestValidateOptionalShapeType(t *testing.T) {
	wideFlag, err := hostarray.NewLogical(1, 2)
	require.NoError(t, err)
	wideWidth, err := hostarray.NewDouble(2, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		pos  int
		bad  *hostarray.Array
	}{
		{"sparse not 1x1", 3, wideFlag},
		{"sparse double", 3, hostarray.Scalar(1)},
		{"verbose not 1x1", 4, wideFlag},
		{"verbose int", 4, hostarray.Int64Scalar(1)},
		{"width not 1x1", 5, wideWidth},
		{"width logical", 5, hostarray.LogicalScalar(true)},
		{"width int", 5, hostarray.Int64Scalar(1)},
		{"width zero", 5, hostarray.Scalar(0)},
		{"width negative", 5, hostarray.Scalar(-0.1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for n := tc.pos; n <= invoke.MaxInputs; n++ {
				args := validArgs(t, n)
				args[tc.pos-1] = tc.bad
				_, err := invoke.Validate(args...)
				requireArgError(t, err, invoke.ErrShapeType, tc.pos)
			}
		})
	}
}

func TestValidateAlgorithmSelector(t *testing.T) {
	bad := []*hostarray.Array{
		hostarray.Scalar(0),
		hostarray.Scalar(3),
		hostarray.Scalar(-1),
		hostarray.Scalar(1.5),
		hostarray.Int64Scalar(7),
		hostarray.LogicalScalar(true),
		hostarray.CellOf(),
	}
	for _, sel := range bad {
		args := validArgs(t, 2)
		args[1] = sel
		_, err := invoke.Validate(args...)
		requireArgError(t, err, invoke.ErrConfig, 2)
	}

	args := validArgs(t, 2)
	args[1] = hostarray.Int64Scalar(2)
	req, err := invoke.Validate(args...)
	require.NoError(t, err)
	assert.Equal(t, invoke.GMC, req.Config.Algorithm)
}

func TestValidateGroups(t *testing.T) {
	grid, err := hostarray.NewCell(2, 2)
	require.NoError(t, err)
	empty, err := hostarray.NewCell(1, 0)
	require.NoError(t, err)

	tests := []struct {
		name   string
		groups *hostarray.Array
		reason string
	}{
		{"not a cell", mustRows(t, [][]float64{{1, 2}}), "cell array"},
		{"no groups", empty, "at least one group"},
		{"matrix of cells", grid, "1xJ or Jx1"},
		{"non-double group", hostarray.CellOf(hostarray.LogicalScalar(true)), "group 0 should be a double matrix"},
		{"missing group", hostarray.CellOf(mustRows(t, [][]float64{{1}}), nil), "group 1 should be a double matrix"},
		{"no columns", hostarray.CellOf(mustRows(t, nil)), "at least one column"},
		{"ragged D", hostarray.CellOf(mustRows(t, [][]float64{{1, 2}}), mustRows(t, [][]float64{{1, 2, 3}})), "group 1 has 3 columns, want 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := invoke.Validate(tc.groups, hostarray.Scalar(2))
			ae := requireArgError(t, err, invoke.ErrShapeType, 1)
			assert.Contains(t, ae.Reason, tc.reason)
		})
	}
}

func TestValidateGroupsReportedBeforeOptionalSlots(t *testing.T) {
	ragged := hostarray.CellOf(mustRows(t, [][]float64{{1, 2}}), mustRows(t, [][]float64{{1, 2, 3}}))

	_, err := invoke.Validate(ragged, hostarray.Scalar(2), hostarray.Scalar(1))
	requireArgError(t, err, invoke.ErrShapeType, 1)

	_, err = invoke.Validate(ragged, hostarray.Scalar(7))
	requireArgError(t, err, invoke.ErrShapeType, 1)
}

func TestValidateColumnCellAndEmptyGroups(t *testing.T) {
	zeroRows, err := hostarray.NewDouble(0, 2)
	require.NoError(t, err)
	cell, err := hostarray.NewCell(3, 1)
	require.NoError(t, err)
	require.NoError(t, cell.SetCell(0, mustRows(t, [][]float64{{1, 2}})))
	require.NoError(t, cell.SetCell(1, zeroRows))
	require.NoError(t, cell.SetCell(2, mustRows(t, nil))) // 0×0

	req, err := invoke.Validate(cell, hostarray.Scalar(1))
	require.NoError(t, err)
	require.Len(t, req.Groups, 3)
	assert.Equal(t, 2, req.Dim)
	for _, g := range req.Groups[1:] {
		r, c := g.Dims()
		assert.Equal(t, 0, r)
		assert.Equal(t, 2, c)
		assert.IsType(t, engine.Empty{}, g)
	}
}

func TestValidateGroupsAreViews(t *testing.T) {
	groups := twoGroups(t)
	req, err := invoke.Validate(groups, hostarray.Scalar(2))
	require.NoError(t, err)

	g0 := req.Groups[0]
	r, c := g0.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.Equal(t, 3.0, g0.At(1, 0))
	assert.Equal(t, 2.0, g0.At(0, 1))

	host, err := groups.Cell(0)
	require.NoError(t, err)
	require.NoError(t, host.Set(1, 0, 30))
	assert.Equal(t, 30.0, g0.At(1, 0), "group must view the caller's buffer")
}
