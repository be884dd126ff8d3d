package i18n

// Lang is a UI language code.
type Lang string

const (
	EN Lang = "en"
	KM Lang = "km"
)

// Toggle flips between the two supported languages.
func (l Lang) Toggle() Lang {
	if l == KM {
		return EN
	}
	return KM
}

// Strings is the UI string table for one language.
type Strings struct {
	HeroTitle        string
	HeroSubtitle     string
	ShopNow          string
	OurCollection    string
	AddToCart        string
	AboutItem        string
	Ingredients      string
	ScentProfile     string
	BackToCollection string
	YourCart         string
	Subtotal         string
	ProceedCheckout  string
	CartEmpty        string
	StartAdding      string
	ContinueShopping string
	CompleteOrder    string
	OrderSummary     string
	Total            string
	FullName         string
	Phone            string
	Address          string
	Notes            string
	SendTelegram     string
	RedirectNote     string
	Contact          string
	Handcrafted      string
	OwnerAccess      string
	EnterPassword    string
	Unlock           string
	ReturnStore      string
	BrandName        string
	ChatWithAI       string
}

var tables = map[Lang]Strings{
	EN: {
		HeroTitle:        "We Have Fresh:",
		HeroSubtitle:     "I am selling these quality items. If you need them, please contact my Telegram or order by adding to the basket.",
		ShopNow:          "Shop Now",
		OurCollection:    "Our Collection",
		AddToCart:        "Add to Cart",
		AboutItem:        "About this item",
		Ingredients:      "Ingredients",
		ScentProfile:     "Scent/Flavor",
		BackToCollection: "Back to Collection",
		YourCart:         "Your Cart",
		Subtotal:         "Subtotal",
		ProceedCheckout:  "Proceed to Checkout",
		CartEmpty:        "Your cart is empty",
		StartAdding:      "Start adding items!",
		ContinueShopping: "Continue Shopping",
		CompleteOrder:    "Complete Your Order",
		OrderSummary:     "Order Summary",
		Total:            "Total",
		FullName:         "Full Name",
		Phone:            "Phone Number",
		Address:          "Delivery Address",
		Notes:            "Order Notes (Optional)",
		SendTelegram:     "Send Order via Telegram",
		RedirectNote:     "You will be redirected to Telegram to send the message.",
		Contact:          "Contact",
		Handcrafted:      "Locally sourced and homemade with care. Quality you can trust.",
		OwnerAccess:      "Owner Access",
		EnterPassword:    "Please enter the password to manage inventory.",
		Unlock:           "Unlock Dashboard",
		ReturnStore:      "Return to Store",
		BrandName:        "Sell This Sell That",
		ChatWithAI:       "Chat with AI Assistant",
	},
	KM: {
		HeroTitle:        "មានលក់៖",
		HeroSubtitle:     "ប្រសិនបើលោកអ្នកត្រូវការ សូមទំនាក់ទំនងមកកាន់ Telegram របស់ខ្ញុំ ឬកម្មង់តាមរយៈការដាក់ចូលក្នុងកន្ត្រក។",
		ShopNow:          "មើលផលិតផល",
		OurCollection:    "ផលិតផលរបស់យើង",
		AddToCart:        "ដាក់ចូលកន្ត្រក",
		AboutItem:        "អំពីផលិតផលនេះ",
		Ingredients:      "គ្រឿងផ្សំ",
		ScentProfile:     "រសជាតិ/ក្លិន",
		BackToCollection: "ត្រឡប់ក្រោយ",
		YourCart:         "កន្ត្រករបស់អ្នក",
		Subtotal:         "សរុប",
		ProceedCheckout:  "បន្តទៅការទូទាត់",
		CartEmpty:        "កន្ត្រករបស់អ្នកទទេ",
		StartAdding:      "ចាប់ផ្តើមជ្រើសរើសទំនិញ!",
		ContinueShopping: "បន្តការទិញទំនិញ",
		CompleteOrder:    "បំពេញការបញ្ជាទិញ",
		OrderSummary:     "សង្ខេបការបញ្ជាទិញ",
		Total:            "សរុប",
		FullName:         "ឈ្មោះពេញ",
		Phone:            "លេខទូរស័ព្ទ",
		Address:          "អាសយដ្ឋានដឹកជញ្ជូន",
		Notes:            "កំណត់ចំណាំ (ជម្រើស)",
		SendTelegram:     "ផ្ញើការបញ្ជាទិញតាម Telegram",
		RedirectNote:     "អ្នកនឹងត្រូវបានបញ្ជូនទៅ Telegram ដើម្បីផ្ញើសារ។",
		Contact:          "ទំនាក់ទំនង",
		Handcrafted:      "ផលិតផលក្នុងស្រុក ធ្វើដោយយកចិត្តទុកដាក់។",
		OwnerAccess:      "ចូលគណនីម្ចាស់ហាង",
		EnterPassword:    "សូមបញ្ចូលពាក្យសម្ងាត់ដើម្បីគ្រប់គ្រងស្តុក។",
		Unlock:           "បើកផ្ទាំងគ្រប់គ្រង",
		ReturnStore:      "ត្រឡប់ទៅហាងវិញ",
		BrandName:        "លក់នេះ លក់នោះ",
		ChatWithAI:       "ជជែកជាមួយ AI",
	},
}

// T returns the string table for a language, defaulting to English.
func T(l Lang) Strings {
	if s, ok := tables[l]; ok {
		return s
	}
	return tables[EN]
}
