package ingestion

import (
	"regexp"
	"strings"
	"time"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
)

var (
	isoDate      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dayFirstDate = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	usSlashDate  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// fallbackLayouts are tried, in order, when none of the numeric forms match.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
}

// NormalizeDate converts an export date cell to YYYY-MM-DD.
//
// Accepted forms: YYYY-MM-DD, DD-MM-YYYY, M/D/YYYY (month first) and the
// textual fallbackLayouts. ok is false for blank cells, unrecognized forms and
// dates that do not exist on the calendar.
func NormalizeDate(raw string) (date string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	switch {
	case isoDate.MatchString(s):
		date = s
	case dayFirstDate.MatchString(s):
		m := dayFirstDate.FindStringSubmatch(s)
		date = m[3] + "-" + m[2] + "-" + m[1]
	case usSlashDate.MatchString(s):
		m := usSlashDate.FindStringSubmatch(s)
		date = m[3] + "-" + pad2(m[1]) + "-" + pad2(m[2])
	default:
		for _, layout := range fallbackLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(v1.DateLayout), true
			}
		}
		return "", false
	}

	if !v1.IsDate(date) {
		return "", false
	}
	return date, true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
