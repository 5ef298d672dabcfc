package models

// Purchase is a single past purchase on a user profile.
type Purchase struct {
	Item  string `json:"item"`
	Price int    `json:"price"`
}

// UserProfile holds the unstructured shopping data the demo reasons over.
// Profiles are fixed reference data, never mutated, looked up by name.
type UserProfile struct {
	Name            string     `json:"name"`
	Age             int        `json:"age"`
	Gender          string     `json:"gender"`
	Aesthetic       string     `json:"aesthetic"`
	Size            string     `json:"size"`
	Budget          int        `json:"budget"`
	EventTypes      []string   `json:"event_type"`
	BrowsingData    []string   `json:"browsing_data"`
	PurchaseHistory []Purchase `json:"purchase_history"`
	Preferences     []string   `json:"preferences"`
}

const DefaultProfileName = "Ava Chen"

// AllProfiles maps profile names to the two scripted demo profiles.
var AllProfiles = map[string]UserProfile{
	"Ava Chen": {
		Name:         "Ava Chen",
		Age:          27,
		Gender:       "female",
		Aesthetic:    "minimalist",
		Size:         "small",
		Budget:       150,
		EventTypes:   []string{"corporate_events", "brunches"},
		BrowsingData: []string{"blazers", "neutral basics", "capsule wardrobe"},
		PurchaseHistory: []Purchase{
			{Item: "wool coat", Price: 210},
			{Item: "silk blouse", Price: 95},
			{Item: "tailored trousers", Price: 180},
		},
		Preferences: []string{"sustainable_fabrics", "neutral_tones"},
	},
	"Leo Nguyen": {
		Name:         "Leo Nguyen",
		Age:          29,
		Gender:       "male",
		Aesthetic:    "smart casual",
		Size:         "medium",
		Budget:       120,
		EventTypes:   []string{"work_dinners", "travel"},
		BrowsingData: []string{"polos", "chinos", "travel_blazers"},
		PurchaseHistory: []Purchase{
			{Item: "linen shirt", Price: 65},
			{Item: "navy chinos", Price: 80},
			{Item: "leather belt", Price: 40},
		},
		Preferences: []string{"slim_fits", "navy_white_palette"},
	},
}

// ProfileByName returns the named profile, falling back to the default
// profile when the name is unknown.
func ProfileByName(name string) UserProfile {
	if p, ok := AllProfiles[name]; ok {
		return p
	}
	return AllProfiles[DefaultProfileName]
}

// OtherProfile toggles between the two demo profiles.
func OtherProfile(name string) UserProfile {
	if name == "Ava Chen" {
		return AllProfiles["Leo Nguyen"]
	}
	return AllProfiles["Ava Chen"]
}
