package models

// CategoryCount is the number of liked articles in one category.
type CategoryCount struct {
	Category Category `json:"category"`
	Likes    int      `json:"likes"`
}

// LikeStats summarizes the liked articles of a user.
type LikeStats struct {
	// Total is the number of liked articles.
	Total int `json:"total"`

	// PerCategory is ordered by Likes descending, then by category order.
	PerCategory []CategoryCount `json:"per_category"`
}

// MostLiked returns the category with the most likes.
func (s LikeStats) MostLiked() (CategoryCount, bool) {
	if len(s.PerCategory) == 0 {
		return CategoryCount{}, false
	}
	return s.PerCategory[0], true
}

// LeastLiked returns the category with the fewest likes among those liked at
// least once.
func (s LikeStats) LeastLiked() (CategoryCount, bool) {
	if len(s.PerCategory) == 0 {
		return CategoryCount{}, false
	}
	return s.PerCategory[len(s.PerCategory)-1], true
}
