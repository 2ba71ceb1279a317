// Package challenge holds the micro-challenge catalog. Three themes, fixed
// IDs; analytics records the selected ID only.
package challenge

// #region catalog

// Challenge is one selectable micro-challenge.
type Challenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

var catalog = []Challenge{
	{
		ID:          "cyber",
		Title:       "Cyber Awareness",
		Icon:        "🛡️",
		Description: "Reflect on how you handle your digital footprint and online safety.",
		Prompt:      "Think of one thing you shared online recently. Who could see it, and would you be comfortable if it stayed visible for years? Write what you would do differently.",
	},
	{
		ID:          "focus",
		Title:       "Deep Focus",
		Icon:        "🎯",
		Description: "Practice noticing what pulls your attention away from important work.",
		Prompt:      "Recall the last time you tried to focus and got distracted. What triggered it, and what is one change to your environment that would have prevented it?",
	},
	{
		ID:          "civic",
		Title:       "Civic Action",
		Icon:        "🌍",
		Description: "Consider one small way you can improve your community this week.",
		Prompt:      "Describe something in your neighbourhood or school that needs fixing. What is the smallest concrete step you could take toward it, and when will you take it?",
	},
}

// Catalog returns all challenges in display order.
func Catalog() []Challenge {
	return catalog
}

// ByID resolves a challenge by its fixed ID.
func ByID(id string) (Challenge, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

// #endregion catalog
