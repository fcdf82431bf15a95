package models

// HeadlinesPage is one page returned by the remote headline source.
type HeadlinesPage struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Articles     []RemoteArticle `json:"articles"`
}

// RemoteArticle is a raw article as delivered by the headline source.
// Every field may be missing in the payload.
type RemoteArticle struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	URLToImage  *string `json:"urlToImage"`
}

// TitleOrEmpty returns the title or an empty string.
func (r RemoteArticle) TitleOrEmpty() string {
	return deref(r.Title)
}

// DescriptionOrEmpty returns the description or an empty string.
func (r RemoteArticle) DescriptionOrEmpty() string {
	return deref(r.Description)
}

// URLOrEmpty returns the source URL or an empty string.
func (r RemoteArticle) URLOrEmpty() string {
	return deref(r.URL)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
