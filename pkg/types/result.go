package types

// ComputationResult aggregates everything a single report needs: the date
// breakdown, the two reduced numbers and their resolved archetypes. It
// exists only for the duration of report generation.
type ComputationResult struct {
	NameInput     string         `json:"name_input"`
	DateInput     string         `json:"date_input"`
	Date          DateInfo       `json:"date"`
	LifeNumber    int            `json:"life_number"`
	LifeArchetype ArchetypeEntry `json:"life_archetype"`
	NameNumber    int            `json:"name_number"`
	NameArchetype ArchetypeEntry `json:"name_archetype"`
	Tikkun        TikkunTemplate `json:"tikkun"`
}
