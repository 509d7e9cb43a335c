package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"numeric string", `"12.5"`, 12.5},
		{"integer string", `"100"`, 100},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"not-a-number"`, 0},
		{"boolean", `true`, 0},
		{"negative", `-3.25`, -3.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tc.in), &n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.Float64())
		})
	}
}

func TestNumberUnmarshalInStruct(t *testing.T) {
	var payload struct {
		Price     Number `json:"price"`
		Liquidity Number `json:"liquidity"`
		Volume    Number `json:"volume"`
	}
	data := `{"price": "0.0042", "liquidity": 15000, "volume": null}`
	require.NoError(t, json.Unmarshal([]byte(data), &payload))

	assert.Equal(t, 0.0042, payload.Price.Float64())
	assert.Equal(t, 15000.0, payload.Liquidity.Float64())
	assert.Equal(t, 0.0, payload.Volume.Float64())
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.0, Finite(math.NaN()))
	assert.Equal(t, 0.0, Finite(math.Inf(1)))
	assert.Equal(t, 0.0, Finite(math.Inf(-1)))
	assert.Equal(t, 42.0, Finite(42.0))
}

func TestNumberMarshalClampsNonFinite(t *testing.T) {
	n := Number(math.NaN())
	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "0", string(out))
}
