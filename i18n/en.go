package i18n

var EN = Messages{
	"generation_label":    "Generation %d",
	"no_results":          "No results found",
	"no_results_hint":     "Try another search or clear the search box",
	"no_results_for":      "The search \"%s\" returned no results. Try another term.",
	"results_for":         "Found %d results for \"%s\"",
	"loading":             "Loading family tree...",
	"loaded":              "The family tree was loaded successfully",
	"welcome_title":       "Welcome to the family museum!",
	"welcome_description": "Discover the family story. Hover over the cards to see family connections.",
	"hover_hint":          "Hover over a card to see connections",
}
