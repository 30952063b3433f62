package domain

// Genres is the static genre lookup table. The catalog API publishes genre
// ids only; titles are resolved locally at ingestion time.
var Genres = []Genre{
	{ID: 1, Title: "Personal Growth"},
	{ID: 2, Title: "Investigative Journalism"},
	{ID: 3, Title: "History"},
	{ID: 4, Title: "Comedy"},
	{ID: 5, Title: "Entertainment"},
	{ID: 6, Title: "Business"},
	{ID: 7, Title: "Fiction"},
	{ID: 8, Title: "News"},
	{ID: 9, Title: "Kids and Family"},
}

// ResolveGenre maps a genre id to its table entry. Unknown ids resolve to a
// placeholder titled "Unknown" so a show is never dropped over an
// unrecognized label.
func ResolveGenre(id int) Genre {
	for _, g := range Genres {
		if g.ID == id {
			return g
		}
	}
	return Genre{ID: id, Title: "Unknown"}
}
