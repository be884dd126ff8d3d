package domain

// SeedProducts is the built-in catalog used when no persisted snapshot exists.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Dish Soap",
			NameKM:        "សាប៊ូលាងចាន",
			Price:         0.4,
			Description:   "A powerful dish soap that cuts through grease effortlessly.",
			DescriptionKM: "សាប៊ូលាងចាន ឆ្នាំង ជំរះបានល្អ។",
			Image:         "https://i.imgur.com/BjhE7RE.jpeg",
			Images: []string{
				"https://i.imgur.com/BjhE7RE.jpeg",
				"https://i.imgur.com/PnZhSI5.jpeg",
				"https://i.imgur.com/FOOuWTy.jpeg",
			},
			Scent:         "Lemon Zest",
			ScentKM:       "ក្លិនក្រូចឆ្មា",
			Ingredients:   "Sodium Lauryl Sulfate, Water, Lemon Essence",
			IngredientsKM: "វត្ថុធាតុដើមក្នុងការបង្កើតសាប៊ូ លាយជាមួយក្លិនក្រូចឆ្មា",
		},
		{
			ID:            "2",
			Name:          "Ombox",
			NameKM:        "អំបុក",
			Price:         0.4,
			Description:   "Made from fresh, newly harvested rice.",
			DescriptionKM: "ធ្វើពីស្រូវទើបប្រមូលផលថ្មីៗ។",
			Image:         "https://i.imgur.com/bkdveiE.jpeg",
			Images: []string{
				"https://i.imgur.com/bkdveiE.jpeg",
				"https://i.imgur.com/a8JTP2K.jpeg",
				"https://i.imgur.com/3UnrwV0.jpeg",
			},
			Scent:         "Fresh Rice",
			ScentKM:       "ក្លិនស្រូវថ្មី",
			Ingredients:   "100% Rice",
			IngredientsKM: "ស្រូវ",
		},
		{
			ID:            "3",
			Name:          "Crispy Rice",
			NameKM:        "បាយក្តាំង",
			Price:         1.75,
			Description:   "Delicious crispy rice mixed with sweet milk.",
			DescriptionKM: "រសជាតិឆ្ងាញ់ លាយជាមួយបាយក្តាំងនិងទឹកដោះគោ Tune។",
			Image:         "https://i.imgur.com/pjyCbQA.jpeg",
			Images: []string{
				"https://i.imgur.com/pjyCbQA.jpeg",
				"https://i.imgur.com/gj6aE7x.jpeg",
				"https://i.imgur.com/K2hpjuw.jpeg",
				"https://i.imgur.com/gUsV0Kx.jpeg",
			},
			Scent:         "Milk & Rice",
			ScentKM:       "ក្លិនទឹកដោះគោនិងអង្ករ",
			Ingredients:   "Rice, Milk, Pork Floss",
			IngredientsKM: "អង្ករ, ទឹកដោះគោ, សាច់ជ្រូកផាត់",
		},
		{
			ID:            "4",
			Name:          "Papaya",
			NameKM:        "ល្ហុង",
			Price:         1.25,
			Description:   "Sweet and natural taste from ripe papaya.",
			DescriptionKM: "រសជាតិឆ្ងាញ់ ផ្អែមពីធម្មជាតិ។",
			Image:         "https://i.imgur.com/vx8kNc7.jpeg",
			Images: []string{
				"https://i.imgur.com/V6gwk1S.jpeg",
				"https://i.imgur.com/ijz2gCN.jpeg",
				"https://i.imgur.com/w8PB76R.jpeg",
				"https://i.imgur.com/DjtlYYy.jpeg",
			},
			Scent:         "Ripe Papaya",
			ScentKM:       "ក្លិនល្ហុងទុំធម្មជាតិ",
			Ingredients:   "Natural Papaya",
			IngredientsKM: "ល្ហុងធម្មជាតិមកពីខេត្តពោធិ៍សាត់",
		},
	}
}
