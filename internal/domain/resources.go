package domain

// Resource is a named reference entry. Only the fields relevant to its group are set.
type Resource struct {
	Name        string `json:"name,omitempty"`
	Number      string `json:"number,omitempty"`
	URL         string `json:"url,omitempty"`
	Item        string `json:"item,omitempty"`
	Tip         string `json:"tip,omitempty"`
	Tool        string `json:"tool,omitempty"`
	Description string `json:"description"`
}

// ResourceDirectory is the static list of heat-safety resources.
type ResourceDirectory struct {
	Emergency struct {
		Hotlines []Resource `json:"hotlines"`
		Websites []Resource `json:"websites"`
	} `json:"emergency"`
	Cooling struct {
		Centers  []Resource `json:"centers"`
		Supplies []Resource `json:"supplies"`
	} `json:"cooling"`
	Prevention struct {
		Home       []Resource `json:"home"`
		Technology []Resource `json:"technology"`
	} `json:"prevention"`
}

// Resources builds a fresh copy of the resource directory.
func Resources() ResourceDirectory {
	var d ResourceDirectory
	d.Emergency.Hotlines = []Resource{
		{Name: "Emergency Services", Number: "911", Description: "For heat-related emergencies"},
		{Name: "Heat Emergency Line", Number: "311", Description: "Non-emergency heat assistance"},
		{Name: "Health Department", Number: "1-800-HEALTH", Description: "Heat illness guidance"},
	}
	d.Emergency.Websites = []Resource{
		{Name: "CDC Heat Safety", URL: "https://www.cdc.gov/disasters/extremeheat", Description: "Comprehensive heat safety information"},
		{Name: "Weather.gov", URL: "https://www.weather.gov/safety/heat", Description: "Official weather alerts and safety"},
		{Name: "Ready.gov", URL: "https://www.ready.gov/heat", Description: "Heat emergency preparedness"},
	}
	d.Cooling.Centers = []Resource{
		{Name: "Community Centers", Description: "Public buildings with air conditioning"},
		{Name: "Libraries", Description: "Free access to cooling during business hours"},
		{Name: "Shopping Centers", Description: "Mall and retail cooling spaces"},
		{Name: "Recreation Centers", Description: "Public pools and cooling facilities"},
	}
	d.Cooling.Supplies = []Resource{
		{Item: "Cooling Towels", Description: "Evaporative cooling for personal use"},
		{Item: "Battery-powered Fans", Description: "Portable cooling during power outages"},
		{Item: "Ice Packs", Description: "For immediate cooling relief"},
		{Item: "Electrolyte Drinks", Description: "For hydration and mineral replacement"},
	}
	d.Prevention.Home = []Resource{
		{Tip: "Seal air leaks", Description: "Improve cooling efficiency"},
		{Tip: "Use window treatments", Description: "Block heat from entering"},
		{Tip: "Install ceiling fans", Description: "Improve air circulation"},
		{Tip: "Plant shade trees", Description: "Natural cooling around home"},
	}
	d.Prevention.Technology = []Resource{
		{Tool: "Smart thermostats", Description: "Efficient temperature management"},
		{Tool: "Weather apps", Description: "Real-time heat alerts"},
		{Tool: "UV monitors", Description: "Track heat exposure"},
		{Tool: "Hydration reminders", Description: "Apps to maintain fluid intake"},
	}
	return d
}
