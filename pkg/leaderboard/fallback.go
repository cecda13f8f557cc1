package leaderboard

import "github.com/collabhq/collabhub/pkg/tier"

// Built-in leaderboard seeds served when the remote source is unavailable or
// empty.

var fallbackCollaborators = []CollaboratorProfile{
	{
		ID:            "collab-1",
		Handle:        "@foodie_doha",
		Avatar:        "👨‍🍳",
		Tier:          tier.Platinum,
		ApprovedCount: 67,
		TotalEarnings: 2450.50,
		TopCampaigns: []TopCampaign{
			{Merchant: "McDonalds", Logo: "https://www.mcdonalds.com/content/dam/sites/ArabiaGWS/arabic/nfl/logo/McDonalds_Logo.png", Earnings: 890},
			{Merchant: "Tea Time", Logo: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQpqawVmP77HQWimN-bUvxVpOlpLE8gYHAXCw&s", Earnings: 650},
			{Merchant: "Karak Mqanes", Logo: "https://images.deliveryhero.io/image/talabat/restaurants/logo_94637864896607282057.jpg?width=180", Earnings: 420},
		},
		JoinedDate: "Oct 2025",
	},
	{
		ID:            "collab-2",
		Handle:        "@qatar_eats",
		Avatar:        "🍽️",
		Tier:          tier.Gold,
		ApprovedCount: 34,
		TotalEarnings: 1280.00,
		TopCampaigns: []TopCampaign{
			{Merchant: "Korean Beauty", Logo: "https://images.snoonu.com/brand/header_image/2024-02/00af4a7a-9386-4860-bb04-809cf7a6fb96_JumboLogo.png?format=webp", Earnings: 520},
			{Merchant: "McDonalds", Logo: "https://www.mcdonalds.com/content/dam/sites/ArabiaGWS/arabic/nfl/logo/McDonalds_Logo.png", Earnings: 380},
		},
		JoinedDate: "Nov 2025",
	},
	{
		ID:            "collab-3",
		Handle:        "@tech_reviewer_qa",
		Avatar:        "📱",
		Tier:          tier.Silver,
		ApprovedCount: 18,
		TotalEarnings: 890.00,
		TopCampaigns: []TopCampaign{
			{Merchant: "Toysimo", Logo: "https://images.snoonu.com/brand/header_image/2024-03/010ca983-af9b-4449-9ef0-d35c66da220b_FavoritebrandToysimo.png?format=webp", Earnings: 650},
		},
		JoinedDate: "Dec 2025",
	},
	{
		ID:            "collab-4",
		Handle:        "@lifestyle_qatar",
		Avatar:        "✨",
		Tier:          tier.Gold,
		ApprovedCount: 28,
		TotalEarnings: 1150.00,
		TopCampaigns: []TopCampaign{
			{Merchant: "Tea Time", Logo: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQpqawVmP77HQWimN-bUvxVpOlpLE8gYHAXCw&s", Earnings: 480},
			{Merchant: "Cat Planet", Logo: "https://images.snoonu.com/brand/header_image/2024-04/8908d507-e801-4afe-b267-80b8fcd2f5b3_Popularbrand7.png?format=webp", Earnings: 340},
		},
		JoinedDate: "Nov 2025",
	},
	{
		ID:            "collab-5",
		Handle:        "@doha_adventures",
		Avatar:        "🌴",
		Tier:          tier.Bronze,
		ApprovedCount: 8,
		TotalEarnings: 320.00,
		TopCampaigns: []TopCampaign{
			{Merchant: "Karak Mqanes", Logo: "https://images.deliveryhero.io/image/talabat/restaurants/logo_94637864896607282057.jpg?width=180", Earnings: 220},
		},
		JoinedDate: "Jan 2026",
	},
}

var fallbackMerchants = []MerchantEntry{
	{ID: "merch-1", Name: "McDonalds", Logo: "https://www.mcdonalds.com/content/dam/sites/ArabiaGWS/arabic/nfl/logo/McDonalds_Logo.png", CommissionsGiven: 8450, CollabsEnrolled: 156, Tags: []string{"Most Active", "Best Paying"}},
	{ID: "merch-2", Name: "Tea Time", Logo: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQpqawVmP77HQWimN-bUvxVpOlpLE8gYHAXCw&s", CommissionsGiven: 5120, CollabsEnrolled: 98, Tags: []string{"Popular", "Fast Approval"}},
	{ID: "merch-3", Name: "Korean Beauty", Logo: "https://images.snoonu.com/brand/header_image/2024-02/00af4a7a-9386-4860-bb04-809cf7a6fb96_JumboLogo.png?format=webp", CommissionsGiven: 4890, CollabsEnrolled: 67, Tags: []string{"High Value"}},
	{ID: "merch-4", Name: "Karak Mqanes", Logo: "https://images.deliveryhero.io/image/talabat/restaurants/logo_94637864896607282057.jpg?width=180", CommissionsGiven: 3540, CollabsEnrolled: 89, Tags: []string{"Trending"}},
	{ID: "merch-5", Name: "Cat Planet", Logo: "https://images.snoonu.com/brand/header_image/2024-04/8908d507-e801-4afe-b267-80b8fcd2f5b3_Popularbrand7.png?format=webp", CommissionsGiven: 2980, CollabsEnrolled: 45, Tags: []string{"Growing"}},
	{ID: "merch-6", Name: "Toysimo", Logo: "https://images.snoonu.com/brand/header_image/2024-03/010ca983-af9b-4449-9ef0-d35c66da220b_FavoritebrandToysimo.png?format=webp", CommissionsGiven: 2340, CollabsEnrolled: 34, Tags: []string{}},
}

var fallbackDailyWinners = []DailyWinner{
	{CollaboratorID: "collab-1", Handle: "foodie_doha", Campaign: "Weekend Special", Merchant: "Pizza Palace", Earnings: 89.50},
	{CollaboratorID: "collab-2", Handle: "qatar_eats", Campaign: "Fresh Start", Merchant: "FreshBox Market", Earnings: 67.00},
	{CollaboratorID: "collab-4", Handle: "lifestyle_qatar", Campaign: "Morning Brew", Merchant: "Cafe Arabica", Earnings: 52.00},
}
