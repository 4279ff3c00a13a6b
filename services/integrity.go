package services

// Badge is the consistency tier attached to an integrity score.
type Badge string

// Badge tiers, lowest to highest.
const (
	BadgeNone   Badge = "none"
	BadgeBronze Badge = "bronze"
	BadgeSilver Badge = "silver"
	BadgeGold   Badge = "gold"
)

// IntegrityScore is the derived ranking value for one check-in. It is never
// stored; the recency component decays with wall-clock time, so it is
// recomputed on every read.
type IntegrityScore struct {
	Score           float64 `json:"score"`
	Badge           Badge   `json:"badge"`
	ConsistencyRate float64 `json:"consistency_rate"`
}

// ComputeIntegrity scores a check-in from its streak length, the days the
// goal has existed, and the hours elapsed since the check-in. The score is
// streak*10 plus up to 50 consistency bonus plus a recency bonus that starts
// at 100 and reaches zero at 50 hours. All inputs are clamped; the function
// never fails.
func ComputeIntegrity(streak, totalDays int, hoursSinceCheckin float64) IntegrityScore {
	if streak < 0 {
		streak = 0
	}
	if totalDays < 0 {
		totalDays = 0
	}
	if hoursSinceCheckin < 0 {
		hoursSinceCheckin = 0
	}

	effectiveDays := totalDays
	if effectiveDays == 0 {
		effectiveDays = 1
	}
	rate := float64(streak) / float64(effectiveDays)
	if rate > 1 {
		rate = 1
	}

	streakPoints := float64(streak) * 10
	consistencyBonus := rate * 50
	recencyBonus := 100 - hoursSinceCheckin*2
	if recencyBonus < 0 {
		recencyBonus = 0
	}

	return IntegrityScore{
		Score:           streakPoints + consistencyBonus + recencyBonus,
		Badge:           badgeFor(rate),
		ConsistencyRate: rate,
	}
}

// badgeFor maps a consistency rate onto a tier. Thresholds are inclusive
// lower bounds checked highest first.
func badgeFor(rate float64) Badge {
	switch {
	case rate >= 0.9:
		return BadgeGold
	case rate >= 0.7:
		return BadgeSilver
	case rate >= 0.5:
		return BadgeBronze
	default:
		return BadgeNone
	}
}
