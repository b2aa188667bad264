package subscribers

const (
	querySubscribe = `
		INSERT INTO email_subscribers (email, source)
		VALUES ($1, $2)
		RETURNING id, email, source, created_at
	`
)
