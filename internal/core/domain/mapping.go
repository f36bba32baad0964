package domain

// WeightSupport groups the tag sets matched against a session's body
// weight figures.
type WeightSupport struct {
	// Light marks products suited to lighter sleepers (average < 70 kg).
	Light []string

	// Heavy marks products built for heavier sleepers or couples.
	Heavy []string
}

// TagMapping translates semantic quiz categories into the sets of
// catalog tags considered a match. Loaded once per process; the scoring
// engine treats it as read-only. Unknown or missing categories simply
// contribute no score.
type TagMapping struct {
	// Firmness maps each firmness preference to its matching tags.
	Firmness map[Firmness][]string

	// SleepPosition maps each sleep position to its matching tags.
	SleepPosition map[SleepPosition][]string

	// WeightSupport holds the light/heavy support tag sets.
	WeightSupport WeightSupport

	// Couples marks products suited to two sleepers.
	Couples []string

	// Single marks products suited to one sleeper.
	Single []string

	// Quality marks premium build indicators worth a flat bonus.
	Quality []string

	// Comfort marks comfort indicators worth a flat bonus.
	Comfort []string

	// SingleOnly marks products unusable for couples, penalised when
	// two people take the quiz.
	SingleOnly []string

	// CouplesOnly marks products oversized for one sleeper, penalised
	// when a single person takes the quiz.
	CouplesOnly []string
}

// DefaultTagMapping returns the tag vocabulary the storefront catalog
// uses, including the Danish storefront synonyms. Deployments with a
// different vocabulary override it via the mappings file.
func DefaultTagMapping() TagMapping {
	return TagMapping{
		Firmness: map[Firmness][]string{
			FirmnessSoft:   {"soft", "plush", "blød"},
			FirmnessMedium: {"medium", "mellem"},
			FirmnessHard:   {"hard", "firm", "fast", "hård"},
		},
		SleepPosition: map[SleepPosition][]string{
			PositionSide:    {"side", "side-sleeper", "sidesover"},
			PositionBack:    {"back", "back-sleeper", "rygsover"},
			PositionStomach: {"stomach", "belly", "mavesover"},
		},
		WeightSupport: WeightSupport{
			Light: []string{"light", "light-support", "soft-support"},
			Heavy: []string{"heavy", "heavy-duty", "extra-support", "reinforced"},
		},
		Couples:     []string{"couples", "double", "dobbelt", "queen", "king"},
		Single:      []string{"single", "enkelt", "single-person"},
		Quality:     []string{"premium", "luxury", "high-quality", "organic", "natural"},
		Comfort:     []string{"comfortable", "supportive", "ergonomic", "pressure-relief"},
		SingleOnly:  []string{"single-only", "twin", "enkeltseng"},
		CouplesOnly: []string{"couples-only", "king-only", "queen-only"},
	}
}
