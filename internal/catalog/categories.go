package catalog

// Category groups related quests into one life domain.
type Category string

const (
	CategoryBodyRecovery   Category = "BODY_RECOVERY"
	CategoryHygiene        Category = "HYGIENE"
	CategoryEatingDrinking Category = "EATING_DRINKING"
	CategoryOrganization   Category = "ORGANIZATION"
	CategorySocialRecovery Category = "SOCIAL_RECOVERY"
	CategoryFinancial      Category = "FINANCIAL"
	CategoryAcademic       Category = "ACADEMIC"
	CategoryCreative       Category = "CREATIVE"
	CategoryCryptoAI       Category = "CRYPTO_AI"
	CategoryFortnite       Category = "FORTNITE"
)

// All lists every category in catalog order. Selection tie-breaks follow
// this order, so it is part of the engine contract, not cosmetic.
var All = []Category{
	CategoryBodyRecovery,
	CategoryHygiene,
	CategoryEatingDrinking,
	CategoryOrganization,
	CategorySocialRecovery,
	CategoryFinancial,
	CategoryAcademic,
	CategoryCreative,
	CategoryCryptoAI,
	CategoryFortnite,
}

var displayNames = map[Category]string{
	CategoryBodyRecovery:   "Body Recovery",
	CategoryHygiene:        "Hygiene",
	CategoryEatingDrinking: "Eating & Drinking",
	CategoryOrganization:   "Organization",
	CategorySocialRecovery: "Social Recovery",
	CategoryFinancial:      "Financial Survival",
	CategoryAcademic:       "Academic Exit",
	CategoryCreative:       "Creative Reawakening",
	CategoryCryptoAI:       "Crypto & AI",
	CategoryFortnite:       "Fortnite Integration",
}

func (c Category) IsValid() bool {
	_, ok := displayNames[c]
	return ok
}

func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}
