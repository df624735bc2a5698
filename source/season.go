package source

// Season groups the episodes listed under one heading.
type Season struct {
	// Label is the trimmed heading text, e.g. "Season 1".
	Label    string     `json:"label"`
	Episodes []*Episode `json:"episodes"`
}

func (s *Season) String() string {
	return s.Label
}

// Add appends an episode and points it back at s.
func (s *Season) Add(title, url string) *Episode {
	episode := &Episode{Title: title, URL: url, Season: s}
	s.Episodes = append(s.Episodes, episode)
	return episode
}
