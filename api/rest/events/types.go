package events

// records page views plus their referring origin
type PageViewRecorder interface {
	PageView(referrer, pageURL, host string)
}

// contains one page-load signal from the landing page
type PageViewRequest struct {
	PageURL string `json:"page_url"`
}
