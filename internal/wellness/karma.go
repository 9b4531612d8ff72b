package wellness

import "wellspring/internal/config"

// RewardCalculator converts a completed activity into a karma award. It is
// pure and stateless; persisting the award is the caller's job.
type RewardCalculator struct {
	baseRewards      map[string]int
	defaultBase      int
	durationBonusCap int
	qualityThreshold int
}

// NewRewardCalculator builds a calculator from validated configuration.
func NewRewardCalculator(cfg config.KarmaConfig) *RewardCalculator {
	rewards := make(map[string]int, len(cfg.BaseRewards))
	for activity, base := range cfg.BaseRewards {
		rewards[activity] = base
	}
	return &RewardCalculator{
		baseRewards:      rewards,
		defaultBase:      cfg.DefaultBase,
		durationBonusCap: cfg.DurationBonusCap,
		qualityThreshold: cfg.QualityThreshold,
	}
}

// Calculate returns the karma award for an activity. Unknown activity types
// earn the default base reward rather than failing. durationMinutes and
// qualityScore are optional; nil means "not reported".
//
// The award is base + min(floor(duration/5), cap), scaled by
// 1 + (quality - threshold)/100 when quality exceeds the threshold, floored
// to an integer. Quality exactly at the threshold earns no bonus.
func (c *RewardCalculator) Calculate(activityType string, durationMinutes *int, qualityScore *int) int {
	reward, ok := c.baseRewards[activityType]
	if !ok {
		reward = c.defaultBase
	}

	if durationMinutes != nil {
		bonus := *durationMinutes / 5
		if bonus > c.durationBonusCap {
			bonus = c.durationBonusCap
		}
		reward += bonus
	}

	if qualityScore != nil && *qualityScore > c.qualityThreshold {
		// Integer form of floor(reward * (1 + (q-threshold)/100)); exact for
		// non-negative rewards.
		reward = reward * (100 + *qualityScore - c.qualityThreshold) / 100
	}

	return reward
}

// IntensityQuality maps an activity intensity label onto the quality scale
// used by Calculate.
func IntensityQuality(intensity string) int {
	switch intensity {
	case "high":
		return 90
	case "medium":
		return 70
	default:
		return 50
	}
}
