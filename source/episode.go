package source

// Episode is a link to one transcript page.
type Episode struct {
	// Title is the trimmed link text. May be empty.
	Title string `json:"title"`
	// URL is absolute, resolved against the category page.
	URL string `json:"url"`

	Season *Season `json:"-"`
}

func (e *Episode) String() string {
	return e.Title
}

// SeasonLabel returns the label of the owning season, or "" for a detached episode.
func (e *Episode) SeasonLabel() string {
	if e.Season == nil {
		return ""
	}
	return e.Season.Label
}
