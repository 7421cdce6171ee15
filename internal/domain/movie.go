package domain

// Movie is one catalog row. The catalog carries a handful of columns the
// recommendation engine understands plus arbitrary descriptive columns,
// which land in Extra as strings.
type Movie struct {
	Title       string
	Genres      string
	Popularity  *float64
	VoteAverage *float64
	Extra       map[string]string
}

// Fields flattens the record into string-keyed primitives so it can be
// serialized as a flat JSON object regardless of which columns the
// catalog happens to have.
func (m Movie) Fields() map[string]any {
	out := make(map[string]any, len(m.Extra)+4)
	for k, v := range m.Extra {
		out[k] = v
	}
	out["title"] = m.Title
	out["genres"] = m.Genres
	if m.Popularity != nil {
		out["popularity"] = *m.Popularity
	}
	if m.VoteAverage != nil {
		out["vote_average"] = *m.VoteAverage
	}
	return out
}
