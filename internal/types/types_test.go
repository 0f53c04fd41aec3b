package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xayaplatform/xaya-move-api/internal/types"
)

func fee(v float64) *float64 { return &v }

func TestGasSettings_Merge(t *testing.T) {
	tests := []struct {
		name         string
		base         types.GasSettings
		override     *types.GasSettings
		expectedMax  *float64
		expectedPrio *float64
	}{
		{
			name:         "nil override keeps the base",
			base:         types.GasSettings{Max: fee(5), Prio: fee(1)},
			override:     nil,
			expectedMax:  fee(5),
			expectedPrio: fee(1),
		},
		{
			name:         "partial override replaces one field",
			base:         types.GasSettings{Max: fee(5), Prio: fee(1)},
			override:     &types.GasSettings{Prio: fee(2)},
			expectedMax:  fee(5),
			expectedPrio: fee(2),
		},
		{
			name:         "full override replaces both fields",
			base:         types.GasSettings{Max: fee(5), Prio: fee(1)},
			override:     &types.GasSettings{Max: fee(3), Prio: fee(2)},
			expectedMax:  fee(3),
			expectedPrio: fee(2),
		},
		{
			name:         "override fills an empty base",
			base:         types.GasSettings{},
			override:     &types.GasSettings{Max: fee(3)},
			expectedMax:  fee(3),
			expectedPrio: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := tt.base.Merge(tt.override)

			if tt.expectedMax == nil {
				assert.Nil(t, merged.Max)
			} else {
				assert.Equal(t, *tt.expectedMax, *merged.Max)
			}
			if tt.expectedPrio == nil {
				assert.Nil(t, merged.Prio)
			} else {
				assert.Equal(t, *tt.expectedPrio, *merged.Prio)
			}
		})
	}
}

func TestGasSettings_MergeDoesNotMutateBase(t *testing.T) {
	base := types.GasSettings{Max: fee(5), Prio: fee(1)}

	base.Merge(&types.GasSettings{Max: fee(9), Prio: fee(9)})

	assert.Equal(t, 5.0, *base.Max)
	assert.Equal(t, 1.0, *base.Prio)
}

func TestGasSettings_Complete(t *testing.T) {
	assert.True(t, types.GasSettings{Max: fee(5), Prio: fee(1)}.Complete())
	assert.False(t, types.GasSettings{Max: fee(5)}.Complete())
	assert.False(t, types.GasSettings{Prio: fee(1)}.Complete())
	assert.False(t, types.GasSettings{}.Complete())
}
