package numerology

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/solmira/arquetipo/pkg/types"
)

// Accepted birth date layouts, tried in order. The first successful
// parse wins. time.Parse rejects calendar-invalid dates such as 31/02,
// so no extra validation is needed here.
var dateLayouts = []string{
	"02/01/2006", // DD/MM/YYYY
	"2006-01-02", // YYYY-MM-DD
}

// AnalyzeDate parses a birth date string and computes its numerological
// breakdown: day, month, year, the year's digit sum, the base total
// (day + month + year digit sum), the master-aware life number and its
// single-digit collapse. Returns ErrInvalidDate when neither layout
// parses the input.
func AnalyzeDate(dateStr string) (types.DateInfo, error) {
	trimmed := strings.TrimSpace(dateStr)

	var parsed time.Time
	valid := false
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			parsed = t
			valid = true
			break
		}
	}
	if !valid {
		return types.DateInfo{}, types.ErrInvalidDate
	}

	day := parsed.Day()
	month := int(parsed.Month())
	year := parsed.Year()

	yearSum := digitSum(year)
	baseTotal := day + month + yearSum

	lifeNumber, err := ReduceWithMasters(baseTotal)
	if err != nil {
		return types.DateInfo{}, fmt.Errorf("reduce base total: %w", err)
	}
	simpleDigit, err := ReduceFully(lifeNumber)
	if err != nil {
		return types.DateInfo{}, fmt.Errorf("reduce life number: %w", err)
	}

	pathLabel := strconv.Itoa(lifeNumber)
	if IsMaster(lifeNumber) {
		pathLabel = fmt.Sprintf("%d/%d", lifeNumber, simpleDigit)
	}

	return types.DateInfo{
		Day:          day,
		Month:        month,
		Year:         year,
		YearDigitSum: yearSum,
		BaseTotal:    baseTotal,
		LifeNumber:   lifeNumber,
		SimpleDigit:  simpleDigit,
		PathLabel:    pathLabel,
	}, nil
}
