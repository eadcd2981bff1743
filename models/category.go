package models

// Categories is the fixed set of menu partitions. The list must match the
// category tabs on the client exactly.
var Categories = []string{
	"new",
	"soups",
	"vegstarter",
	"chickenstarter",
	"prawnsstarter",
	"seafood",
	"springrolls",
	"momos",
	"gravies",
	"potrice",
	"rice",
	"ricewithgravy",
	"noodle",
	"noodlewithgravy",
	"thai",
	"chopsuey",
	"desserts",
	"beverages",
	"extra",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
