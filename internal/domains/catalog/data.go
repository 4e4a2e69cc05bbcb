package catalog

// defaultEntries is the built-in catalog. Order is the order shown in the picker.
var defaultEntries = []Entry{
	{Label: "Pakistan/Islamabad", Zone: "Asia/Karachi"},
	{Label: "United States/New York", Zone: "America/New_York"},
	{Label: "United States/Los Angeles", Zone: "America/Los_Angeles"},
	{Label: "United Kingdom/London", Zone: "Europe/London"},
	{Label: "Germany/Berlin", Zone: "Europe/Berlin"},
	{Label: "France/Paris", Zone: "Europe/Paris"},
	{Label: "Japan/Tokyo", Zone: "Asia/Tokyo"},
	{Label: "China/Beijing", Zone: "Asia/Shanghai"},
	{Label: "India/New Delhi", Zone: "Asia/Kolkata"},
	{Label: "Australia/Sydney", Zone: "Australia/Sydney"},
	{Label: "Canada/Toronto", Zone: "America/Toronto"},
	{Label: "Brazil/Brasília", Zone: "America/Sao_Paulo"},
	{Label: "Russia/Moscow", Zone: "Europe/Moscow"},
	{Label: "South Africa/Cape Town", Zone: "Africa/Johannesburg"},
	{Label: "Egypt/Cairo", Zone: "Africa/Cairo"},
	{Label: "UAE/Dubai", Zone: "Asia/Dubai"},
	{Label: "Singapore/Singapore", Zone: "Asia/Singapore"},
	{Label: "South Korea/Seoul", Zone: "Asia/Seoul"},
	{Label: "Turkey/Istanbul", Zone: "Europe/Istanbul"},
	{Label: "Italy/Rome", Zone: "Europe/Rome"},
	{Label: "Spain/Madrid", Zone: "Europe/Madrid"},
	{Label: "Netherlands/Amsterdam", Zone: "Europe/Amsterdam"},
	{Label: "Sweden/Stockholm", Zone: "Europe/Stockholm"},
	{Label: "Norway/Oslo", Zone: "Europe/Oslo"},
	{Label: "Mexico/Mexico City", Zone: "America/Mexico_City"},
	{Label: "Argentina/Buenos Aires", Zone: "America/Argentina/Buenos_Aires"},
	{Label: "Chile/Santiago", Zone: "America/Santiago"},
	{Label: "Thailand/Bangkok", Zone: "Asia/Bangkok"},
	{Label: "Vietnam/Ho Chi Minh City", Zone: "Asia/Ho_Chi_Minh"},
	{Label: "Philippines/Manila", Zone: "Asia/Manila"},
	{Label: "Indonesia/Jakarta", Zone: "Asia/Jakarta"},
	{Label: "Malaysia/Kuala Lumpur", Zone: "Asia/Kuala_Lumpur"},
	{Label: "Bangladesh/Dhaka", Zone: "Asia/Dhaka"},
	{Label: "Sri Lanka/Colombo", Zone: "Asia/Colombo"},
	{Label: "Nepal/Kathmandu", Zone: "Asia/Kathmandu"},
	{Label: "Iran/Tehran", Zone: "Asia/Tehran"},
	{Label: "Israel/Jerusalem", Zone: "Asia/Jerusalem"},
	{Label: "Saudi Arabia/Riyadh", Zone: "Asia/Riyadh"},
	{Label: "Kenya/Nairobi", Zone: "Africa/Nairobi"},
	{Label: "Nigeria/Lagos", Zone: "Africa/Lagos"},
	{Label: "Ghana/Accra", Zone: "Africa/Accra"},
	{Label: "Morocco/Casablanca", Zone: "Africa/Casablanca"},
	{Label: "New Zealand/Auckland", Zone: "Pacific/Auckland"},
	{Label: "Fiji/Suva", Zone: "Pacific/Fiji"},
}
