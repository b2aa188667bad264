package stats

import (
	"net/http"
	"strconv"

	icestats "codeberg.org/icecube/server/icecube/stats"
	"codeberg.org/icecube/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// number of most-recent days returned when no limit is given
const defaultDayLimit = 30

// GetDailyStatsHandler returns the aggregated daily stats, keyed by
// date, for holders of the shared stats token.
func GetDailyStatsHandler(statsRepo StatsReader, token string, debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.Query("token")

		if supplied == "" || supplied != token {
			if debug {
				errors.UnauthorizedDebug(c, "invalid or missing token", tokenDebug{
					ReceivedToken: presence(supplied),
					ExpectedToken: presence(token),
				})
				return
			}

			errors.Unauthorized(c, "invalid or missing token")
			return
		}

		if statsRepo == nil {
			errors.ServiceUnavailable(c, "stats store not configured")
			return
		}

		limit := defaultDayLimit
		if l, ok := c.GetQuery("limit"); ok {
			if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		days, err := statsRepo.ListDaily(c.Request.Context(), limit)
		if err != nil {
			errors.InternalError(c, err.Error())
			return
		}

		c.JSON(http.StatusOK, buildReport(days))
	}
}

// reshapes daily rows into the date-keyed display mapping, defaulting
// null counters to zero
func buildReport(days []icestats.DailyStat) Report {
	report := Report{}

	for _, day := range days {
		report[day.Date.Format("2006-01-02")] = DayReport{
			PageViews:        orZero(day.PageViews),
			EmailSubmissions: orZero(day.EmailSubmissions),
			EmailDuplicates:  orZero(day.EmailDuplicates),
			EmailErrors:      orZero(day.EmailErrors),
		}
	}

	return report
}

func orZero(n *int) int {
	if n == nil {
		return 0
	}

	return *n
}

func presence(s string) string {
	if s == "" {
		return "missing"
	}

	return "present"
}
