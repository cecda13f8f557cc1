package campaign

// FallbackCampaigns is the built-in campaign list served whenever the remote
// provider is unavailable or returns no rows. Consumers rely on this fallback;
// the catalog is never empty.
var FallbackCampaigns = []Campaign{
	{
		ID:            "camp-1",
		Merchant:      "Tea Time",
		Logo:          "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQpqawVmP77HQWimN-bUvxVpOlpLE8gYHAXCw&s",
		Vertical:      "Restaurant",
		Category:      "Cafe & Wraps",
		Discount:      "25% off up to 25 QAR",
		Reward:        "16% of discount value",
		RewardExample: "25 QAR discount = 4.00 QAR for you",
		MinOrder:      "Min order 35 QAR",
		VideoReq:      "15-45 sec video",
		Requirements: []string{
			"Video must be 15-45 seconds",
			"Show the item clearly (close-up bite/cut shot encouraged)",
			"Mention the discount clearly",
			"Include Snoonu branding (overlay or verbal mention)",
			"No competitor mentions",
		},
		Budget:       "600 referrals available",
		Timeline:     "Campaign runs until Mar 10, 2026",
		ReviewNotes:  "Keep it cozy and quick—hook in the first 2 seconds performs best.",
		ProductImage: "https://images.snoonu.com/image_product/2022-09/VHuOXJm9L6.png?format=webp",
		ProductName:  "Spanish Wrap",
	},
	{
		ID:            "camp-2",
		Merchant:      "Korean Beauty",
		Logo:          "https://images.snoonu.com/brand/header_image/2024-02/00af4a7a-9386-4860-bb04-809cf7a6fb96_JumboLogo.png?format=webp",
		Vertical:      "Market",
		Category:      "Beauty & Skincare",
		Discount:      "15% off up to 60 QAR",
		Reward:        "12% of discount value",
		RewardExample: "60 QAR discount = 7.20 QAR for you",
		MinOrder:      "Min order 150 QAR",
		VideoReq:      "20-60 sec video",
		Requirements: []string{
			"Video must be 20-60 seconds",
			"Show product + texture/application shot",
			"Mention shade name or why it matches you",
			"Clean, well-lit frame (no heavy filters)",
			"Family-friendly content only",
		},
		Budget:       "250 referrals available",
		Timeline:     "Campaign runs until Apr 05, 2026",
		ReviewNotes:  "Before/after or quick wear-test style content usually gets approved fastest.",
		ProductImage: "https://images.snoonu.com/product/2024-8/475e2562-4602-4870-bedb-9adcf89b0029_21CCOOLIVORY.jpg",
		ProductName:  "Tirtir Mask Fit Red Cushion - Natural Beige 29N",
	},
	{
		ID:            "camp-3",
		Merchant:      "McDonalds",
		Logo:          "https://www.mcdonalds.com/content/dam/sites/ArabiaGWS/arabic/nfl/logo/McDonalds_Logo.png",
		Vertical:      "Restaurant",
		Category:      "Fast Food",
		Discount:      "20% off up to 30 QAR",
		Reward:        "14% of discount value",
		RewardExample: "30 QAR discount = 4.20 QAR for you",
		MinOrder:      "Min order 45 QAR",
		VideoReq:      "15-60 sec video",
		Requirements: []string{
			"Video must be 15-60 seconds",
			"Show the bundle + unbagging shot",
			"Mention the discount offer clearly",
			"Include Snoonu delivery mention (speed/packaging)",
			"No competitor mentions",
		},
		Budget:       "1200 referrals available",
		Timeline:     "Campaign runs until Feb 20, 2026",
		ReviewNotes:  "Unboxing + first bite reaction tends to perform best.",
		ProductImage: "https://images.snoonu.com/brand_product/2025-09/e06e089c-196e-4208-9496-8fa8b40174fd_output.png?format=webp",
		ProductName:  "Snoonu Bundle",
	},
	{
		ID:            "camp-4",
		Merchant:      "Karak Mqanes",
		Logo:          "https://images.deliveryhero.io/image/talabat/restaurants/logo_94637864896607282057.jpg?width=180",
		Vertical:      "Restaurant",
		Category:      "Tea & Snacks",
		Discount:      "30% off up to 20 QAR",
		Reward:        "18% of discount value",
		RewardExample: "20 QAR discount = 3.60 QAR for you",
		MinOrder:      "Min order 25 QAR",
		VideoReq:      "10-40 sec video",
		Requirements: []string{
			"Video must be 10-40 seconds",
			"Show the drink pouring/steam shot",
			"Mention the promo clearly",
			"Keep it authentic (no scripted vibe needed)",
			"Family-friendly content only",
		},
		Budget:       "500 referrals available",
		Timeline:     "Campaign runs until Mar 01, 2026",
		ReviewNotes:  "Short karak-pour clips + cozy vibes usually get strong engagement.",
		ProductImage: "https://images.snoonu.com/menu_item/2024-8/e278955f-07d1-4d40-a5dd-7b82d9e32109_del34.jpg?format=webp",
		ProductName:  "Signature Karak",
	},
	{
		ID:            "camp-5",
		Merchant:      "Jumbo Souq",
		Logo:          "https://images.snoonu.com/brand/header_image/2024-02/00af4a7a-9386-4860-bb04-809cf7a6fb96_JumboLogo.png?format=webp",
		Vertical:      "Market",
		Category:      "Accessories",
		Discount:      "10% off up to 80 QAR",
		Reward:        "10% of discount value",
		RewardExample: "80 QAR discount = 8.00 QAR for you",
		MinOrder:      "Min order 180 QAR",
		VideoReq:      "20-70 sec video",
		Requirements: []string{
			"Video must be 20-70 seconds",
			"Show the case details + fit on phone",
			"Highlight customization/design element",
			"Mention Snoonu delivery convenience",
			"Clear, steady shots preferred",
		},
		Budget:       "220 referrals available",
		Timeline:     "Campaign runs until Apr 12, 2026",
		ReviewNotes:  "Quick 'before/after' (plain phone → new case) works well.",
		ProductImage: "https://images.snoonu.com/brand_product/2025-08/37a30f14-2e47-4a36-a37e-eb77d66a3cc2_output.png?format=webp",
		ProductName:  "iPhone 16 Pro Black Case",
	},
	{
		ID:            "camp-6",
		Merchant:      "Cat Planet",
		Logo:          "https://images.snoonu.com/brand/header_image/2024-04/8908d507-e801-4afe-b267-80b8fcd2f5b3_Popularbrand7.png?format=webp",
		Vertical:      "Market",
		Category:      "Pets",
		Discount:      "12% off up to 120 QAR",
		Reward:        "15% of discount value",
		RewardExample: "120 QAR discount = 18.00 QAR for you",
		MinOrder:      "Min order 250 QAR",
		VideoReq:      "20-90 sec video",
		Requirements: []string{
			"Video must be 20-90 seconds",
			"Show the product + your cat using it (if possible)",
			"Mention the discount clearly",
			"Keep it fun + pet-safe (no risky setups)",
			"No competitor mentions",
		},
		Budget:       "140 referrals available",
		Timeline:     "Campaign runs until Mar 25, 2026",
		ReviewNotes:  "If your cat interacts with it on camera, approval is usually quick.",
		ProductImage: "https://images.snoonu.com/product/2025-10/4fb0fc3d-d60f-4471-abc4-e3fb2a4edae4_download13.png?format=webp",
		ProductName:  "Whisker Fiesta Cactus Cat Tree",
	},
	{
		ID:            "camp-7",
		Merchant:      "Toysimo",
		Logo:          "https://images.snoonu.com/brand/header_image/2024-03/010ca983-af9b-4449-9ef0-d35c66da220b_FavoritebrandToysimo.png?format=webp",
		Vertical:      "Market",
		Category:      "Toys & Collectibles",
		Discount:      "15% off up to 70 QAR",
		Reward:        "13% of discount value",
		RewardExample: "70 QAR discount = 9.10 QAR for you",
		MinOrder:      "Min order 200 QAR",
		VideoReq:      "25-90 sec video",
		Requirements: []string{
			"Video must be 25-90 seconds",
			"Unbox on camera (seal → reveal)",
			"Show key pulls/cards highlights (if any)",
			"Mention the discount + Snoonu delivery",
			"No gambling framing (keep it collectible-focused)",
		},
		Budget:       "160 referrals available",
		Timeline:     "Campaign runs until May 01, 2026",
		ReviewNotes:  "Top-down unboxing shots with clear audio work best.",
		ProductImage: "https://images.snoonu.com/brand_product/2025-12/addcde0c-4d18-40d3-87b6-55c36875d8d5_output.png?format=webp",
		ProductName:  "2024 Leaf Soccer Blaster Box",
	},
	{
		ID:            "camp-8",
		Merchant:      "Al Mannai Optics",
		Logo:          "https://images.snoonu.com/brand/2024-10/adc7e72c-6739-49b7-82f4-f390f32110b7_output.png?format=webp",
		Vertical:      "Market",
		Category:      "Fashion & Eyewear",
		Discount:      "10% off up to 150 QAR",
		Reward:        "12% of discount value",
		RewardExample: "150 QAR discount = 18.00 QAR for you",
		MinOrder:      "Min order 350 QAR",
		VideoReq:      "20-60 sec video",
		Requirements: []string{
			"Video must be 20-60 seconds",
			"Show try-on + close-up of frame details",
			"Mention UV protection/style benefit",
			"Mention the discount clearly",
			"Clean lighting (outdoor golden hour is great)",
		},
		Budget:       "90 referrals available",
		Timeline:     "Campaign runs until Mar 18, 2026",
		ReviewNotes:  "Lifestyle 'fit check' style performs better than a pure product shot.",
		ProductImage: "https://images.snoonu.com/images/7e12ad52-3922-49c5-874b-5f06d1e2b2bd_4089.jpg",
		ProductName:  "Rayban Sg 3584N Sunglasses",
	},
	{
		ID:            "camp-9",
		Merchant:      "Pavilion Decor",
		Logo:          "https://images.snoonu.com/brand/2026-01/c381b1a4-2424-4eee-99f7-15db1e58584b_output.png?format=webp",
		Vertical:      "Market",
		Category:      "Home & Decor",
		Discount:      "18% off up to 90 QAR",
		Reward:        "11% of discount value",
		RewardExample: "90 QAR discount = 9.90 QAR for you",
		MinOrder:      "Min order 180 QAR",
		VideoReq:      "20-70 sec video",
		Requirements: []string{
			"Video must be 20-70 seconds",
			"Show the light on/off + close-up details",
			"Film in a dim room for best effect",
			"Mention the promo clearly",
			"Avoid shaky footage (use stable shots)",
		},
		Budget:       "180 referrals available",
		Timeline:     "Campaign runs until Apr 22, 2026",
		ReviewNotes:  "Night ambiance videos tend to get higher saves/shares.",
		ProductImage: "https://images.snoonu.com/product/2025-8/b9343cdf-8a28-4463-968b-9bc5fd89f7ae_3DCrystalBallNightLightFerrisWheel.jpg?format=webp",
		ProductName:  "3D Crystal Ball Night Light",
	},
	{
		ID:            "camp-10",
		Merchant:      "TMH Outlet",
		Logo:          "https://images.snoonu.com/brand/2024-07/5ae1b364-be59-4d18-a7d4-4256c3673472_output.png?format=webp",
		Vertical:      "Market",
		Category:      "Fitness & Sports",
		Discount:      "12% off up to 110 QAR",
		Reward:        "10% of discount value",
		RewardExample: "110 QAR discount = 11.00 QAR for you",
		MinOrder:      "Min order 300 QAR",
		VideoReq:      "25-90 sec video",
		Requirements: []string{
			"Video must be 25-90 seconds",
			"Show setup + a couple exercises (safe form)",
			"Highlight adjustability and stability",
			"Mention Snoonu delivery convenience",
			"No unsafe lifting demonstrations",
		},
		Budget:       "120 referrals available",
		Timeline:     "Campaign runs until Mar 30, 2026",
		ReviewNotes:  "Quick 'home gym' routine demos work best (2–3 moves).",
		ProductImage: "https://images.snoonu.com/brand_product/2024-11/fab1a664-8508-4aef-a494-39ab323def75_output.png",
		ProductName:  "Adjustable Dumbbell Bench",
	},
	{
		ID:            "camp-11",
		Merchant:      "Cute Lillies",
		Logo:          "https://www.gorafeeq.com/_next/image?url=https%3A%2F%2Fimg2.gorafeeq.com%2Fpublic%2Fassets%2Frestaurant_appimg%2F9025_logo_image_1732181300909.png&w=256&q=75",
		Vertical:      "Market",
		Category:      "Flowers & Gifts",
		Discount:      "20% off up to 50 QAR",
		Reward:        "15% of discount value",
		RewardExample: "50 QAR discount = 7.50 QAR for you",
		MinOrder:      "Min order 120 QAR",
		VideoReq:      "15-60 sec video",
		Requirements: []string{
			"Video must be 15-60 seconds",
			"Show unwrapping + bouquet close-ups",
			"Mention the discount clearly",
			"Keep it family-friendly and tasteful",
			"Aesthetic lighting preferred",
		},
		Budget:       "300 referrals available",
		Timeline:     "Campaign runs until Feb 29, 2026",
		ReviewNotes:  "Unwrap + reaction + final beauty shot (3-step) is the winning format.",
		ProductImage: "https://images.snoonu.com/images/9360b3b5-320e-4ac0-92e9-6f4ecdf692b6_FlowerBouquet7738.jpg?format=webp",
		ProductName:  "Flower Bouquet",
	},
}
