package screener

import "solscreener/models"

// HoldingSignals are the holder-distribution percentages reported by the
// primary market-data provider. All values are percentage points.
type HoldingSignals struct {
	SniperHeldPercentage  float64
	DevHeldPercentage     float64
	BundlerHeldPercentage float64
	InsiderHeldPercentage float64
	Freezable             bool
}

// ScamScore grades holder-distribution signals 0..100. Thresholds are
// tiered rather than linear so a single concentrated holder class weighs
// more than several mild ones.
func ScamScore(sig HoldingSignals) int {
	score := 0

	switch {
	case sig.SniperHeldPercentage > 30:
		score += 25
	case sig.SniperHeldPercentage > 15:
		score += 15
	}

	switch {
	case sig.DevHeldPercentage > 20:
		score += 25
	case sig.DevHeldPercentage > 10:
		score += 15
	}

	switch {
	case sig.BundlerHeldPercentage > 20:
		score += 20
	case sig.BundlerHeldPercentage > 10:
		score += 10
	}

	if sig.InsiderHeldPercentage > 40 {
		score += 20
	}
	if sig.Freezable {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

// GoPlusSignals are the contract-level flags from the fallback security
// provider. It has no sniper or bundler data; its flags are coarser.
type GoPlusSignals struct {
	Honeypot       bool
	Blacklisted    bool
	OpenSource     bool
	Mintable       bool
	HolderCount    int64
	CreatorPercent float64 // percentage points
	OwnerPercent   float64
}

// SecurityFromGoPlus maps contract-level flags into a SecurityInfo. The
// sniper and bundler pointers stay nil: this source cannot observe them.
func SecurityFromGoPlus(sig GoPlusSignals) *models.SecurityInfo {
	score := 0
	if sig.Honeypot {
		score += 50
	}
	if sig.Blacklisted {
		score += 30
	}
	if !sig.OpenSource {
		score += 10
	}
	if sig.HolderCount > 0 && sig.HolderCount < 10 {
		score += 20
	}
	if sig.CreatorPercent > 50 {
		score += 20
	}
	if sig.OwnerPercent > 50 {
		score += 20
	}
	if score > 100 {
		score = 100
	}

	sec := &models.SecurityInfo{
		DevHeldPercentage:     sig.CreatorPercent,
		InsiderHeldPercentage: sig.CreatorPercent + sig.OwnerPercent,
		Freezable:             sig.Mintable,
		IsScam:                sig.Honeypot || sig.Blacklisted,
		ScamScore:             score,
	}
	sec.RiskScore = RiskScore(sec)
	return sec
}

// RiskScore layers the coarser display score on top of ScamScore. It is
// deliberately a separate grading from ScamScore: same inputs, different
// tiers, so the badge can be stricter than the filter score without the
// two drifting into one another.
func RiskScore(sec *models.SecurityInfo) int {
	if sec == nil {
		return 0
	}
	score := sec.ScamScore

	if sec.SniperHeldPercentage != nil {
		switch {
		case *sec.SniperHeldPercentage > 30:
			score += 20
		case *sec.SniperHeldPercentage > 15:
			score += 10
		}
	}

	switch {
	case sec.DevHeldPercentage > 20:
		score += 20
	case sec.DevHeldPercentage > 10:
		score += 10
	}

	if sec.BundlerHeldPercentage != nil && *sec.BundlerHeldPercentage > 20 {
		score += 15
	}
	if sec.Freezable {
		score += 25
	}
	if sec.IsScam {
		score = 100
	}

	if score > 100 {
		score = 100
	}
	return score
}
