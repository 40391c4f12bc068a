package types

// DateInfo is the numerological breakdown of a birth date.
type DateInfo struct {
	Day          int    `json:"day"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	YearDigitSum int    `json:"year_digit_sum"` // sum of the year's decimal digits
	BaseTotal    int    `json:"base_total"`     // day + month + year digit sum
	LifeNumber   int    `json:"life_number"`    // master-aware reduction of BaseTotal
	SimpleDigit  int    `json:"simple_digit"`   // full single-digit reduction of LifeNumber
	PathLabel    string `json:"path_label"`     // "11/2" for masters, "7" otherwise
}

// IsMaster reports whether the life number is one of the master numbers
// 11, 22 or 33, for which digit-sum reduction halts early.
func (d DateInfo) IsMaster() bool {
	return d.LifeNumber == 11 || d.LifeNumber == 22 || d.LifeNumber == 33
}
