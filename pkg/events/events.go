package events

// Category is an S City browsing category
type Category struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Event is one S City listing
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Price       string `json:"price,omitempty"`
	Image       string `json:"image"`
	HasRegister bool   `json:"has_register"`
}

var fallbackCategories = []Category{
	{Name: "Events", Image: "https://images.snoonu.com/ContentManagementSystem/SCity/9e8cff22-f9b8-4c78-8374-4e9b0fa12b7d_Events.png"},
	{Name: "Leisure & Activities", Image: "https://images.snoonu.com/ContentManagementSystem/SCity/eaf9a00b-478a-484b-80f3-0880c11ec9e4_Leisure.png"},
	{Name: "Learning & Development", Image: "https://images.snoonu.com/ContentManagementSystem/SCity/11f86731-b068-4512-894b-0c1682417c88_Learning.png"},
	{Name: "Sports", Image: "https://images.snoonu.com/ContentManagementSystem/SnoofunMock/b7f78fcf-2b48-46f2-b41a-a6f0228e5235_football.png"},
	{Name: "Tours & Travel", Image: "https://images.snoonu.com/ContentManagementSystem/SCity/f377cdba-01d1-488a-8672-7d7667571dbb_Travel.png"},
	{Name: "Beauty & Wellness", Image: "https://images.snoonu.com/ContentManagementSystem/SCity/c94b595a-4ed5-49ed-a46b-99b95185794a_SWellness.png"},
}

var fallbackEvents = []Event{
	{ID: 1, Title: "Experience Qatar - Full Day Desert Adventure Experience", Category: "Leisure & Activities", Date: "16 Jan", Time: "12:00 AM", Price: "from 50 QR", Image: "https://images.snoonu.com/snoofun/2026-01/f72ebff7-e1e7-41ed-9baf-bdd51ef7eaa8_output.png", HasRegister: true},
	{ID: 2, Title: "Experience Qatar - Inland Sea Desert Picnic Experience", Category: "Leisure & Activities", Date: "16 Jan", Time: "12:00 AM", Price: "from 1001 QR", Image: "https://images.snoonu.com/snoofun/2026-01/2a510b0f-922b-4d9f-8478-15e030df4699_output.png", HasRegister: true},
	{ID: 3, Title: "Qatar Plastica Conference 2026 - When Innovation Meets Elegance", Category: "Learning & Development", Date: "16 Jan", Time: "4:00 AM", Image: "https://images.snoonu.com/snoofun/2026-01/cbeb4abe-e376-4012-8788-689e43e05b36_output.png"},
	{ID: 4, Title: "Arabian Adventures - Dhow Cruise", Category: "Tours & Travel", Date: "16 Jan", Time: "5:00 AM", Price: "from 220 QR", Image: "https://images.snoonu.com/snoofun/2025-12/302299ae-8f17-4d30-94e0-0d949545ff13_output.png", HasRegister: true},
	{ID: 5, Title: "Arabian Adventures - Shahaniya Tour", Category: "Tours & Travel", Date: "16 Jan", Time: "6:00 AM", Price: "from 250 QR", Image: "https://images.snoonu.com/snoofun/2025-12/6d5b20de-9921-4ac8-bf59-e406e5c97c1e_output.png", HasRegister: true},
	{ID: 6, Title: "Experience Qatar - Fishing Trip Experience (The Pearl)", Category: "Leisure & Activities", Date: "16 Jan", Time: "6:00 AM", Price: "from 2000 QR", Image: "https://images.snoonu.com/snoofun/2026-01/d0de3e18-ed97-413f-844d-48f082e00aa0_output.png", HasRegister: true},
	{ID: 7, Title: "Arabian Adventures - Camp Rental (7 Hours)", Category: "Tours & Travel", Date: "16 Jan", Time: "6:00 AM", Price: "from 130 QR", Image: "https://images.snoonu.com/snoofun/2025-12/2bcf3d1e-6cb2-422f-b979-7b8b85642101_output.png", HasRegister: true},
	{ID: 8, Title: "Arabian Adventures - Half-Day Desert Safari", Category: "Tours & Travel", Date: "16 Jan", Time: "6:00 AM", Price: "from 160 QR", Image: "https://images.snoonu.com/snoofun/2025-12/6b0a3063-6895-4e34-ab89-a81e56aebf91_output.png", HasRegister: true},
	{ID: 9, Title: "Experience Qatar - Desert Essentials Experience (Half-Day)", Category: "Leisure & Activities", Date: "16 Jan", Time: "6:00 AM", Price: "from 25 QR", Image: "https://images.snoonu.com/snoofun/2026-01/f85a6a4d-1c4b-43ae-b717-713f62e4e96b_output.png", HasRegister: true},
	{ID: 10, Title: "Fällä – Self-Driven Solar-Powered Boat", Category: "Leisure & Activities", Date: "16 Jan", Time: "6:00 AM", Price: "from 240 QR", Image: "https://images.snoonu.com/snoofun/2025-08/17436b22-569e-4444-83ee-d84f22f46996_output.png", HasRegister: true},
}
