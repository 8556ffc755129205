package item

// Vocabularies published by the marketplace UI. Used for prompts and
// completion only; the backend accepts free text.

var Categories = []string{
	"Tops",
	"Bottoms",
	"Dresses",
	"Outerwear",
	"Shoes",
	"Accessories",
}

var Sizes = []string{
	"XS", "S", "M", "L", "XL", "XXL",
	"6", "7", "8", "9", "10", "11", "12",
	"28", "29", "30", "31", "32", "33", "34", "35", "36", "38", "40",
}

var Conditions = []string{
	"New with tags",
	"Like new",
	"Excellent",
	"Very good",
	"Good",
	"Fair",
}
