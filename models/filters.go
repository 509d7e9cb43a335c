package models

// TokenFilters is the sparse query-parameter bag for listing endpoints.
// Pointer fields distinguish "not supplied" from an explicit zero; only
// supplied bounds are translated into provider range predicates.
type TokenFilters struct {
	MarketCapMin *float64 `json:"marketCapMin,omitempty"`
	MarketCapMax *float64 `json:"marketCapMax,omitempty"`
	LiquidityMin *float64 `json:"liquidityMin,omitempty"`
	LiquidityMax *float64 `json:"liquidityMax,omitempty"`
	Volume24Min  *float64 `json:"volume24Min,omitempty"`
	Volume24Max  *float64 `json:"volume24Max,omitempty"`
	HoldersMin   *float64 `json:"holdersMin,omitempty"`
	HoldersMax   *float64 `json:"holdersMax,omitempty"`

	BuyCount24Min  *float64 `json:"buyCount24Min,omitempty"`
	BuyCount24Max  *float64 `json:"buyCount24Max,omitempty"`
	SellCount24Min *float64 `json:"sellCount24Min,omitempty"`
	SellCount24Max *float64 `json:"sellCount24Max,omitempty"`
	TxnCount24Min  *float64 `json:"txnCount24Min,omitempty"`
	TxnCount24Max  *float64 `json:"txnCount24Max,omitempty"`
	// Price change bounds in percentage points; converted to fractions
	// for providers that expect them that way.
	Change24Min *float64 `json:"change24Min,omitempty"`
	Change24Max *float64 `json:"change24Max,omitempty"`

	LaunchpadName        []string `json:"launchpadName,omitempty"`
	GraduationPercentMin *float64 `json:"graduationPercentMin,omitempty"`
	GraduationPercentMax *float64 `json:"graduationPercentMax,omitempty"`

	SniperCountMax           *float64 `json:"sniperCountMax,omitempty"`
	SniperHeldPercentageMax  *float64 `json:"sniperHeldPercentageMax,omitempty"`
	BundlerCountMax          *float64 `json:"bundlerCountMax,omitempty"`
	BundlerHeldPercentageMax *float64 `json:"bundlerHeldPercentageMax,omitempty"`
	DevHeldPercentageMax     *float64 `json:"devHeldPercentageMax,omitempty"`
	InsiderHeldPercentageMax *float64 `json:"insiderHeldPercentageMax,omitempty"`
	Freezable                *bool    `json:"freezable,omitempty"`
	IncludeScams             *bool    `json:"includeScams,omitempty"`

	CreatedAfter  *float64 `json:"createdAfter,omitempty"`
	CreatedBefore *float64 `json:"createdBefore,omitempty"`
}

// DefaultLaunchpads is the launchpad set applied when the caller supplies
// none.
var DefaultLaunchpads = []string{"Pump.fun", "Bonk", "LaunchLab"}

// DefaultFilters is the documented baseline: minimum liquidity $1000,
// default launchpad set, scams excluded.
func DefaultFilters() TokenFilters {
	liq := 1000.0
	scams := false
	return TokenFilters{
		LiquidityMin: &liq,
		LaunchpadName: append([]string(nil), DefaultLaunchpads...),
		IncludeScams: &scams,
	}
}

// Launchpads returns the caller's launchpad set, falling back to the
// default set.
func (f TokenFilters) Launchpads() []string {
	if len(f.LaunchpadName) > 0 {
		return f.LaunchpadName
	}
	return DefaultLaunchpads
}

// FloatOr dereferences an optional bound with a fallback.
func FloatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}
