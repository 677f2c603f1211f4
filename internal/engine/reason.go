package engine

import (
	"fmt"
	"strings"

	"github.com/INTERPOLALERT/back-to-life/internal/catalog"
	"github.com/INTERPOLALERT/back-to-life/internal/storage"
)

var categoryReasons = map[catalog.Category]string{
	catalog.CategoryBodyRecovery:   "Your body needs gentle movement to rebuild strength",
	catalog.CategoryHygiene:        "Self-care builds self-respect, one small step at a time",
	catalog.CategoryEatingDrinking: "Nourishing your body is the foundation of recovery",
	catalog.CategoryOrganization:   "A clear space helps clear your mind",
	catalog.CategorySocialRecovery: "Reconnecting with others, at your own pace",
	catalog.CategoryFinancial:      "Financial stability reduces stress and builds confidence",
	catalog.CategoryAcademic:       "Your education matters, even in tiny steps",
	catalog.CategoryCreative:       "Creativity is how your soul breathes",
	catalog.CategoryCryptoAI:       "Engaging your interests in a balanced way",
	catalog.CategoryFortnite:       "Gaming as a tool for skill-building and joy",
}

// buildReason produces the human-readable justification shown next to the
// selected quest.
func buildReason(category catalog.Category, tod TimeOfDay, profile *storage.Profile, lastReflection *storage.Reflection, freshStart bool) string {
	var b strings.Builder

	reason, ok := categoryReasons[category]
	if !ok {
		reason = "This quest is selected to help you move forward"
	}
	b.WriteString(reason)

	if lastReflection != nil {
		switch {
		case lastReflection.Energy <= 3:
			b.WriteString(". Your energy is low, so we're keeping it gentle.")
		case lastReflection.Energy >= 7:
			b.WriteString(". You have good energy today, let's use it wisely.")
		}
	}

	switch tod {
	case Morning:
		b.WriteString(" Perfect for starting your day.")
	case Evening:
		b.WriteString(" A good way to wind down your day.")
	}

	if profile.Streak > 0 {
		fmt.Fprintf(&b, " You're %d days strong!", profile.Streak)
	} else if freshStart {
		b.WriteString(" You're just getting started, and every small win counts.")
	}

	return b.String()
}

// ChampionMessage returns a streak-keyed encouragement line for the home
// screen.
func ChampionMessage(profile *storage.Profile) string {
	streak := profile.Streak
	switch {
	case streak == 0:
		return "Every champion starts somewhere. Today is your day."
	case streak == 1:
		return "You're back. The champion is waking up."
	case streak < 7:
		return fmt.Sprintf("Day %d. You're building momentum.", streak)
	case streak < 14:
		return fmt.Sprintf("%d days strong. The champion is remembering.", streak)
	case streak < 30:
		return fmt.Sprintf("%d days. You're not the same person who started.", streak)
	case streak < 60:
		return fmt.Sprintf("%d days! The world better get ready.", streak)
	default:
		return fmt.Sprintf("%d days of greatness. The legend continues.", streak)
	}
}
