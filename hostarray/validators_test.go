package hostarray_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/groupmix/hostarray"
	"github.com/stretchr/testify/require"
)

func TestValidateScalar(t *testing.T) {
	row, err := hostarray.NewLogical(1, 2)
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      *hostarray.Array
		allowed []hostarray.Class
		wantErr error
	}{
		{"logical ok", hostarray.LogicalScalar(true), []hostarray.Class{hostarray.ClassLogical}, nil},
		{"numeric either", hostarray.Int64Scalar(1), []hostarray.Class{hostarray.ClassDouble, hostarray.ClassInt64}, nil},
		{"nil", nil, []hostarray.Class{hostarray.ClassLogical}, hostarray.ErrNilArray},
		{"not 1x1", row, []hostarray.Class{hostarray.ClassLogical}, hostarray.ErrBadShape},
		{"wrong class", hostarray.Scalar(1), []hostarray.Class{hostarray.ClassLogical}, hostarray.ErrClassMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := hostarray.ValidateScalar(tc.in, tc.allowed...)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, hostarray.ValidateFinite(hostarray.Scalar(1)))
	require.NoError(t, hostarray.ValidateFinite(hostarray.Int64Scalar(1)))
	require.ErrorIs(t, hostarray.ValidateFinite(hostarray.Scalar(math.NaN())), hostarray.ErrNaNInf)
	require.ErrorIs(t, hostarray.ValidateFinite(hostarray.LogicalScalar(true)), hostarray.ErrClassMismatch)
	require.ErrorIs(t, hostarray.ValidateFinite(nil), hostarray.ErrNilArray)
}
