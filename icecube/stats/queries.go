package stats

const (
	// the counter column is validated against the Event set and then
	// spliced in by name; postgres placeholders cannot bind identifiers
	queryIncrementStat = `
		INSERT INTO daily_stats (date, %s)
		VALUES (CURRENT_DATE, 1)
		ON CONFLICT (date)
		DO UPDATE SET %s = COALESCE(daily_stats.%s, 0) + 1
	`

	queryListDaily = `
		SELECT date, page_views, email_submissions, email_duplicates, email_errors, contact_submissions
		FROM daily_stats
		ORDER BY date DESC
		LIMIT $1
	`
)
