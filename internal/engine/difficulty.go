package engine

import "github.com/INTERPOLALERT/back-to-life/internal/storage"

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// targetDifficulty computes the difficulty [1,5] to aim for today.
// Levels raise it slowly (one step per five levels, capped at two), a
// long streak raises it further, and a low-energy reflection pulls it
// back down. Only the highest streak threshold applies: 14+ days gives
// +2, otherwise 7+ days gives +1.
func targetDifficulty(level, streak int, lastReflection *storage.Reflection) int {
	d := 1

	levelBonus := level / 5
	if levelBonus > 2 {
		levelBonus = 2
	}
	d += levelBonus

	switch {
	case streak >= 14:
		d += 2
	case streak >= 7:
		d++
	}

	if lastReflection != nil && lastReflection.Energy <= 3 {
		d--
	}

	return clampDifficulty(d)
}

func clampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
