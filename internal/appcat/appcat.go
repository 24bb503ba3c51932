package appcat

import "fmt"

// Category groups apps for bulk selection.
type Category string

const (
	CategorySocial Category = "social"
	CategoryGames  Category = "games"
	CategoryOther  Category = "other"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategorySocial, CategoryGames, CategoryOther}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategorySocial:
		return "Social"
	case CategoryGames:
		return "Games"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// App describes a restrictable app.
type App struct {
	ID       string
	Name     string
	Category Category
	Color    string // hex accent color for display
}

// apps is the built-in catalog. Real installed-app discovery requires
// platform permission integration and is out of scope.
var apps = []App{
	{ID: "tiktok", Name: "TikTok", Category: CategorySocial, Color: "#FF3DA6"},
	{ID: "instagram", Name: "Instagram", Category: CategorySocial, Color: "#FF6B57"},
	{ID: "snapchat", Name: "Snapchat", Category: CategorySocial, Color: "#FFE55A"},
	{ID: "facebook", Name: "Facebook", Category: CategorySocial, Color: "#2E7BFF"},

	{ID: "candycrush", Name: "Candy Crush", Category: CategoryGames, Color: "#FF7A3C"},
	{ID: "minecraft", Name: "Minecraft", Category: CategoryGames, Color: "#2ED47A"},
	{ID: "clash", Name: "Clash Royale", Category: CategoryGames, Color: "#7B61FF"},

	{ID: "youtube", Name: "YouTube", Category: CategoryOther, Color: "#FF3D3D"},
	{ID: "reddit", Name: "Reddit", Category: CategoryOther, Color: "#FF5C2D"},
	{ID: "browser", Name: "Browser", Category: CategoryOther, Color: "#5CC8FF"},
}

var byID = func() map[string]*App {
	m := make(map[string]*App, len(apps))
	for i := range apps {
		m[apps[i].ID] = &apps[i]
	}
	return m
}()

// All returns every app in the catalog.
func All() []App {
	out := make([]App, len(apps))
	copy(out, apps)
	return out
}

// Get returns the app with the given id.
func Get(id string) (App, error) {
	a, ok := byID[id]
	if !ok {
		return App{}, fmt.Errorf("unknown app %q", id)
	}
	return *a, nil
}

// ByCategory returns all apps in the given category.
func ByCategory(c Category) []App {
	var out []App
	for _, a := range apps {
		if a.Category == c {
			out = append(out, a)
		}
	}
	return out
}

// Known reports whether every id names a catalog app.
func Known(ids []string) error {
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return fmt.Errorf("unknown app %q", id)
		}
	}
	return nil
}
