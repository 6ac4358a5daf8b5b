package models

// Categories is the closed set of math topic tags used to classify
// problems and per-topic progress. Order matches the frontend pickers.
var Categories = []string{
	"algebra",
	"calculus",
	"geometry",
	"trigonometry",
	"statistics",
	"linear-algebra",
	"differential-equations",
	"discrete-math",
	"precalculus",
	"number-theory",
}

var categorySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		m[c] = struct{}{}
	}
	return m
}()

// ValidCategory reports whether c is one of the enumerated math categories.
func ValidCategory(c string) bool {
	_, ok := categorySet[c]
	return ok
}
