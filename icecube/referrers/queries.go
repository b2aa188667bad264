package referrers

const (
	queryRecord = `
		INSERT INTO referrer_logs (referrer, page_url)
		VALUES ($1, $2)
	`
)
