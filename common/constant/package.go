package constant

import "kerala-tours/model"

var PackagesData = []model.TourPackage{
	{
		Id:            "1",
		Title:         "Complete Kerala Grand Tour",
		Description:   "Ten unhurried days across the hills, spice country, backwaters and beaches of Kerala with a private guide.",
		Price:         28_000,
		OriginalPrice: 34_000,
		Duration:      "10 Days 9 Nights",
		Category:      "Complete Tour",
		Destinations:  []string{"Kochi", "Munnar", "Thekkady", "Alleppey", "Kumarakom", "Kovalam", "Trivandrum"},
		Difficulty:    model.DifficultyModerate,
		Tags:          []string{"Bestseller", "Family", "Private Guide"},
		Rating:        4.9,
		ReviewCount:   328,
		Featured:      true,
		Highlights: []string{
			"Sunrise over the tea estates",
			"Overnight houseboat on the backwaters",
			"Kathakali performance in Kochi",
		},
		Inclusions:      []string{"Accommodation", "Daily breakfast", "Private air-conditioned car", "Houseboat with all meals", "Guide fees"},
		Exclusions:      []string{"Flights", "Entry tickets", "Personal expenses"},
		BestTimeToVisit: []string{"September", "October", "November", "December", "January", "February", "March"},
		Itinerary: []model.ItineraryDay{
			{
				Day:           1,
				Title:         "Arrival in Kochi",
				Description:   "Pickup from the airport and an evening walk through the old harbour district.",
				Activities:    []string{"Chinese fishing nets", "St. Francis Church"},
				Meals:         []string{"Dinner"},
				Accommodation: "Heritage hotel, Fort Kochi",
				TravelTime:    "1 hour",
				Highlights:    []string{"Sunset at the harbour"},
			},
			{
				Day:           2,
				Title:         "Drive to the hills",
				Description:   "Climb into the Western Ghats past waterfalls and spice gardens.",
				Activities:    []string{"Cheeyappara waterfalls", "Spice garden visit"},
				Meals:         []string{"Breakfast", "Dinner"},
				Accommodation: "Tea estate bungalow",
				TravelTime:    "4 hours",
				Highlights:    []string{"First views of the tea estates"},
			},
			{
				Day:         10,
				Title:       "Departure from Trivandrum",
				Description: "Morning at leisure and transfer to the airport.",
				Activities:  []string{"Padmanabhaswamy temple (outside view)"},
				Meals:       []string{"Breakfast"},
				TravelTime:  "30 minutes",
				Highlights:  []string{},
			},
		},
		PricingTiers: []model.PricingTier{
			{
				Name:          "Standard",
				Price:         28_000,
				OriginalPrice: 34_000,
				Features:      []string{"3-star hotels", "Shared houseboat", "Daily breakfast"},
			},
			{
				Name:          "Deluxe",
				Price:         35_000,
				OriginalPrice: 42_000,
				Popular:       true,
				Features:      []string{"4-star hotels", "Private houseboat", "Breakfast and dinner"},
			},
			{
				Name:          "Luxury",
				Price:         52_000,
				OriginalPrice: 60_000,
				Features:      []string{"5-star resorts", "Premium houseboat", "All meals", "Ayurvedic massage"},
			},
		},
	},
	{
		Id:              "2",
		Title:           "Munnar Hill Station Escape",
		Description:     "Misty tea gardens, cool air and gentle walks through the high ranges.",
		Price:           18_000,
		OriginalPrice:   21_000,
		Duration:        "4 Days 3 Nights",
		Category:        "Hill Station",
		Destinations:    []string{"Munnar", "Mattupetty", "Eravikulam"},
		Difficulty:      model.DifficultyModerate,
		Tags:            []string{"Nature", "Couples"},
		Rating:          4.8,
		ReviewCount:     256,
		Featured:        true,
		Highlights:      []string{"Tea factory tour", "Nilgiri tahr at Eravikulam"},
		Inclusions:      []string{"Accommodation", "Breakfast", "Transfers"},
		Exclusions:      []string{"Lunch", "Jeep safari"},
		BestTimeToVisit: []string{"September", "October", "November", "December", "January", "February"},
		Itinerary: []model.ItineraryDay{
			{
				Day:           1,
				Title:         "Into the high ranges",
				Description:   "Drive up from Kochi and check in to a hillside resort.",
				Activities:    []string{"Valara waterfalls"},
				Meals:         []string{"Dinner"},
				Accommodation: "Hillside resort",
				TravelTime:    "4 hours",
				Highlights:    []string{},
			},
			{
				Day:         2,
				Title:       "Tea country",
				Description: "Tea museum in the morning and the dam lake in the afternoon.",
				Activities:  []string{"Tea museum", "Mattupetty dam", "Echo point"},
				Meals:       []string{"Breakfast"},
				Highlights:  []string{"Tea tasting"},
			},
		},
		PricingTiers: []model.PricingTier{},
	},
	{
		Id:              "3",
		Title:           "Alleppey Backwater Houseboat Cruise",
		Description:     "Drift along palm fringed canals on a private kettuvallam with a resident cook.",
		Price:           15_000,
		OriginalPrice:   18_000,
		Duration:        "3 Days 2 Nights",
		Category:        "Backwaters",
		Destinations:    []string{"Alleppey", "Kumarakom", "Vembanad Lake"},
		Difficulty:      model.DifficultyEasy,
		Tags:            []string{"Relaxing", "Couples", "Family"},
		Rating:          4.9,
		ReviewCount:     412,
		Featured:        true,
		Highlights:      []string{"Overnight on a houseboat", "Village canoe ride"},
		Inclusions:      []string{"Houseboat with all meals", "Canoe ride", "Transfers"},
		Exclusions:      []string{"Drinks", "Tips"},
		BestTimeToVisit: []string{"August", "September", "October", "November", "December", "January", "February", "March"},
		Itinerary: []model.ItineraryDay{
			{
				Day:           1,
				Title:         "Board the houseboat",
				Description:   "Cruise through the canals and moor for the night near a paddy field.",
				Activities:    []string{"Houseboat cruise", "Toddy shop visit"},
				Meals:         []string{"Lunch", "Dinner"},
				Accommodation: "Private houseboat",
				Highlights:    []string{"Sunset on Vembanad Lake"},
			},
		},
		PricingTiers: []model.PricingTier{
			{
				Name:     "Shared Houseboat",
				Price:    15_000,
				Features: []string{"Shared deck", "All meals"},
			},
			{
				Name:          "Private Houseboat",
				Price:         22_000,
				OriginalPrice: 25_000,
				Popular:       true,
				Features:      []string{"Private boat", "All meals", "Upper deck"},
			},
		},
	},
	{
		Id:              "4",
		Title:           "Thekkady Wildlife Safari",
		Description:     "Boat safari on Periyar lake, jungle trek with tribal trackers and a spice plantation walk.",
		Price:           16_500,
		Duration:        "3 Days 2 Nights",
		Category:        "Wildlife",
		Destinations:    []string{"Thekkady", "Periyar", "Kumily"},
		Difficulty:      model.DifficultyModerate,
		Tags:            []string{"Wildlife", "Nature", "Adventure"},
		Rating:          4.6,
		ReviewCount:     187,
		Featured:        false,
		Highlights:      []string{"Elephants at the lake shore", "Bamboo rafting"},
		Inclusions:      []string{"Jungle lodge", "All meals", "Safari permits"},
		Exclusions:      []string{"Camera fees"},
		BestTimeToVisit: []string{"October", "November", "December", "January", "February", "March", "April"},
		Itinerary: []model.ItineraryDay{
			{
				Day:           1,
				Title:         "Periyar boat safari",
				Description:   "Afternoon boat ride on the lake inside the tiger reserve.",
				Activities:    []string{"Boat safari"},
				Meals:         []string{"Lunch", "Dinner"},
				Accommodation: "Jungle lodge",
				Highlights:    []string{"Bison and elephant sightings"},
			},
		},
		PricingTiers: []model.PricingTier{},
	},
	{
		Id:              "5",
		Title:           "Kerala Ayurveda Wellness Retreat",
		Description:     "A week of traditional Ayurvedic therapies, yoga and sattvic food by the sea.",
		Price:           25_000,
		OriginalPrice:   30_000,
		Duration:        "7 Days 6 Nights",
		Category:        "Wellness",
		Destinations:    []string{"Kovalam", "Trivandrum"},
		Difficulty:      model.DifficultyEasy,
		Tags:            []string{"Wellness", "Yoga", "Solo"},
		Rating:          4.7,
		ReviewCount:     143,
		Featured:        true,
		Highlights:      []string{"Doctor consultation", "Daily Abhyanga massage"},
		Inclusions:      []string{"Resort stay", "All meals", "Therapies", "Yoga sessions"},
		Exclusions:      []string{"Medicines to take home"},
		BestTimeToVisit: []string{"June", "July", "August", "September"},
		Itinerary: []model.ItineraryDay{
			{
				Day:           1,
				Title:         "Consultation",
				Description:   "Meet the physician and plan the therapy schedule.",
				Activities:    []string{"Consultation", "Evening yoga"},
				Meals:         []string{"Lunch", "Dinner"},
				Accommodation: "Ayurveda resort",
				Highlights:    []string{},
			},
		},
		PricingTiers: []model.PricingTier{},
	},
	{
		Id:              "6",
		Title:           "Fort Kochi Heritage Walk",
		Description:     "Colonial streets, the Jewish quarter and spice warehouses explored on foot.",
		Price:           8_500,
		Duration:        "2 Days 1 Night",
		Category:        "Heritage & Culture",
		Destinations:    []string{"Fort Kochi", "Mattancherry"},
		Difficulty:      model.DifficultyEasy,
		Tags:            []string{"Culture", "History", "Short Trip"},
		Rating:          4.5,
		ReviewCount:     98,
		Featured:        false,
		Highlights:      []string{"Paradesi Synagogue", "Dutch Palace murals"},
		Inclusions:      []string{"Boutique stay", "Breakfast", "Walking guide"},
		Exclusions:      []string{"Entry tickets"},
		BestTimeToVisit: []string{"October", "November", "December", "January", "February"},
		Itinerary: []model.ItineraryDay{
			{
				Day:           1,
				Title:         "Old town walk",
				Description:   "Guided walk from the harbour to Jew Town.",
				Activities:    []string{"Heritage walk", "Kathakali show"},
				Meals:         []string{"Dinner"},
				Accommodation: "Boutique homestay",
				Highlights:    []string{"Spice market"},
			},
		},
		PricingTiers: []model.PricingTier{},
	},
	{
		Id:              "7",
		Title:           "Wayanad Trekking Adventure",
		Description:     "Summit Chembra peak, explore prehistoric cave carvings and camp in the forest.",
		Price:           14_000,
		Duration:        "5 Days 4 Nights",
		Category:        "Adventure",
		Destinations:    []string{"Wayanad", "Chembra Peak", "Edakkal Caves"},
		Difficulty:      model.DifficultyChallenging,
		Tags:            []string{"Trekking", "Camping"},
		Rating:          4.4,
		ReviewCount:     76,
		Featured:        false,
		Highlights:      []string{"Heart shaped lake", "Edakkal petroglyphs"},
		Inclusions:      []string{"Tents and homestays", "All meals", "Trek permits"},
		Exclusions:      []string{"Trekking gear"},
		BestTimeToVisit: []string{"October", "November", "December", "January", "February"},
		Itinerary: []model.ItineraryDay{
			{
				Day:           2,
				Title:         "Chembra summit",
				Description:   "Early start for the climb to the heart shaped lake and the summit.",
				Activities:    []string{"Trek"},
				Meals:         []string{"Breakfast", "Packed lunch", "Dinner"},
				Accommodation: "Forest camp",
				TravelTime:    "6 hours on foot",
				Highlights:    []string{"Summit views"},
			},
		},
		PricingTiers: []model.PricingTier{},
	},
	{
		Id:              "8",
		Title:           "Varkala & Kovalam Beach Holiday",
		Description:     "Clifftop cafes, lighthouse beach and lazy days on the southern coast.",
		Price:           20_000,
		OriginalPrice:   23_000,
		Duration:        "5 Days 4 Nights",
		Category:        "Beach",
		Destinations:    []string{"Varkala", "Kovalam"},
		Difficulty:      model.DifficultyEasy,
		Tags:            []string{"Beach", "Relaxing"},
		Rating:          4.6,
		ReviewCount:     164,
		Featured:        false,
		Highlights:      []string{"Varkala cliff sunset", "Lighthouse beach"},
		Inclusions:      []string{"Beach resort", "Breakfast", "Transfers"},
		Exclusions:      []string{"Water sports"},
		BestTimeToVisit: []string{"November", "December", "January", "February", "March"},
		Itinerary: []model.ItineraryDay{
			{
				Day:           1,
				Title:         "Varkala cliff",
				Description:   "Check in and walk the cliff at sunset.",
				Activities:    []string{"Cliff walk"},
				Meals:         []string{"Dinner"},
				Accommodation: "Cliff resort",
				Highlights:    []string{},
			},
		},
		PricingTiers: []model.PricingTier{},
	},
}
