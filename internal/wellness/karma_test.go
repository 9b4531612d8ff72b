package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wellspring/internal/config"
)

func defaultCalculator() *RewardCalculator {
	return NewRewardCalculator(config.KarmaConfig{
		BaseRewards:      config.DefaultBaseRewards(),
		DefaultBase:      5,
		DurationBonusCap: 20,
		QualityThreshold: 50,
	})
}

func intPtr(n int) *int { return &n }

func TestCalculate_BaseRewards(t *testing.T) {
	calc := defaultCalculator()

	cases := map[string]int{
		"meditation":           10,
		"workout":              15,
		"breathing":            5,
		"journaling":           8,
		"community_help":       25,
		"challenge_completion": 50,
		"daily_goal":           20,
		"environmental_action": 30,
		"crisis_support":       100,
	}
	for activity, want := range cases {
		assert.Equal(t, want, calc.Calculate(activity, nil, nil), activity)
	}
}

func TestCalculate_UnknownActivityDefaults(t *testing.T) {
	calc := defaultCalculator()

	assert.Equal(t, 5, calc.Calculate("underwater_basket_weaving", nil, nil))
	assert.Equal(t, 5, calc.Calculate("", nil, nil))
}

func TestCalculate_DurationBonus(t *testing.T) {
	calc := defaultCalculator()

	t.Run("five minutes per point", func(t *testing.T) {
		assert.Equal(t, 10, calc.Calculate("meditation", intPtr(0), nil))
		assert.Equal(t, 10, calc.Calculate("meditation", intPtr(4), nil))
		assert.Equal(t, 11, calc.Calculate("meditation", intPtr(5), nil))
		assert.Equal(t, 12, calc.Calculate("meditation", intPtr(10), nil))
		assert.Equal(t, 16, calc.Calculate("meditation", intPtr(30), nil))
	})

	t.Run("capped at twenty", func(t *testing.T) {
		assert.Equal(t, 30, calc.Calculate("meditation", intPtr(100), nil))
		assert.Equal(t, 30, calc.Calculate("meditation", intPtr(500), nil))
	})
}

func TestCalculate_QualityMultiplier(t *testing.T) {
	calc := defaultCalculator()

	t.Run("no bonus at or below threshold", func(t *testing.T) {
		assert.Equal(t, 10, calc.Calculate("meditation", nil, intPtr(50)))
		assert.Equal(t, 10, calc.Calculate("meditation", nil, intPtr(30)))
		assert.Equal(t, 10, calc.Calculate("meditation", nil, intPtr(0)))
	})

	t.Run("scaled above threshold", func(t *testing.T) {
		// floor(10 * 1.4)
		assert.Equal(t, 14, calc.Calculate("meditation", nil, intPtr(90)))
		// floor(10 * 1.2)
		assert.Equal(t, 12, calc.Calculate("meditation", nil, intPtr(70)))
		// floor(15 * 1.5)
		assert.Equal(t, 22, calc.Calculate("workout", nil, intPtr(100)))
	})

	t.Run("applied after duration bonus", func(t *testing.T) {
		// (10 + 6) * 1.4 = 22.4 -> 22
		assert.Equal(t, 22, calc.Calculate("meditation", intPtr(30), intPtr(90)))
	})
}

func TestCalculate_Monotonicity(t *testing.T) {
	calc := defaultCalculator()

	t.Run("longer never earns less", func(t *testing.T) {
		prev := 0
		for minutes := 0; minutes <= 200; minutes += 5 {
			got := calc.Calculate("workout", intPtr(minutes), intPtr(90))
			assert.GreaterOrEqual(t, got, prev, "duration %d", minutes)
			prev = got
		}
	})

	t.Run("better quality never earns less", func(t *testing.T) {
		prev := 0
		for quality := 0; quality <= 100; quality += 10 {
			got := calc.Calculate("workout", intPtr(30), intPtr(quality))
			assert.GreaterOrEqual(t, got, prev, "quality %d", quality)
			prev = got
		}
	})
}

func TestIntensityQuality(t *testing.T) {
	assert.Equal(t, 90, IntensityQuality("high"))
	assert.Equal(t, 70, IntensityQuality("medium"))
	assert.Equal(t, 50, IntensityQuality("low"))
	assert.Equal(t, 50, IntensityQuality("unknown"))
}
