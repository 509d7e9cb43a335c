package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that survives the loose typing of upstream provider
// payloads: the same field may arrive as a JSON number, a numeric string,
// null, or garbage. Anything unparsable or non-finite decodes to 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*n = 0
			return nil
		}
		*n = Number(Finite(parseFloat(str)))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = Number(Finite(f))
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(Finite(float64(n)))
}

func (n Number) Float64() float64 {
	return Finite(float64(n))
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// Finite clamps NaN and ±Inf to 0 so that derived arithmetic (ratios,
// divisions by provider-supplied values) can never leak a non-finite
// number into a response.
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
