package types

// ArchetypeEntry is a static descriptive text block associated with one
// reduced number in {1..9, 11, 22, 33}. Entries are loaded once and never
// mutated.
type ArchetypeEntry struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	CorrectionTheme string `json:"correction_theme"`
}

// TikkunTemplate is the richer static text block used to build the
// life-number section of a report. Any list may be empty; the assembler
// omits the whole section (header included) when it is.
type TikkunTemplate struct {
	CentralTheme      []string `json:"central_theme"`
	Patterns          []string `json:"patterns"`
	CorrectionPhrases []string `json:"correction_phrases"`
	Keys              []string `json:"keys"`
	Questions         []string `json:"questions"`
}
