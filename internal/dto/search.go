package dto

// SearchParams are the optional query filters of the image search
// endpoint. Dates use the 2006-01-02 layout.
type SearchParams struct {
	Keyword   string `form:"keyword"`
	Tag       string `form:"tag"`
	MinRating *int   `form:"min_rating"`
	MaxRating *int   `form:"max_rating"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
