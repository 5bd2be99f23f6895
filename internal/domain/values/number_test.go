package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  Number
		isErr bool
	}{
		{name: "json number", in: `12.5`, want: Number{Float64: 12.5, Valid: true}},
		{name: "integer", in: `40`, want: Number{Float64: 40, Valid: true}},
		{name: "numeric string", in: `"12.5"`, want: Number{Float64: 12.5, Valid: true}},
		{name: "padded string", in: `" 7 "`, want: Number{Float64: 7, Valid: true}},
		{name: "empty string", in: `""`, want: Number{}},
		{name: "null", in: `null`, want: Number{}},
		{name: "zero", in: `0`, want: Number{Float64: 0, Valid: true}},
		{name: "garbage string", in: `"tall"`, isErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tt.in), &n)
			if tt.isErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNumberMarshal(t *testing.T) {
	b, err := json.Marshal(Number{Float64: 3, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, `3`, string(b))

	b, err = json.Marshal(Number{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestNumberOr(t *testing.T) {
	assert.Equal(t, 5.0, Number{Float64: 5, Valid: true}.Or(9))
	assert.Equal(t, 9.0, Number{}.Or(9))
	assert.Equal(t, 0.0, Number{}.Or(0))
}

func TestNumberPtr(t *testing.T) {
	n := Number{Float64: 5, Valid: true}
	require.NotNil(t, n.Ptr())
	assert.Equal(t, 5.0, *n.Ptr())

	empty := Number{}
	assert.Nil(t, empty.Ptr())

	var nilNumber *Number
	assert.Nil(t, nilNumber.Ptr())
}

func TestDimensionsInputCoercion(t *testing.T) {
	var in DimensionsInput
	err := json.Unmarshal([]byte(`{"height":"","width":"24","depth":"","unit":"in"}`), &in)
	require.NoError(t, err)

	dim := in.Dimensions()
	assert.Equal(t, 0.0, dim.Height)
	assert.Equal(t, 24.0, dim.Width)
	assert.Nil(t, dim.Depth)
	assert.Equal(t, UnitInch, dim.Unit)
}
