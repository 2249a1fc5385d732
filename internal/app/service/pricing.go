package service

// Hourly rates in SGD by level and class size. Maintained by the
// operations team; an absent combination means the offering cannot be
// priced and must not be accepted.
var pricingTable = map[string]map[string]string{
	"Primary 1":         {"Big Group": "20", "Small Group": "36.67", "1 to 1": "45"},
	"Primary 2":         {"Big Group": "20", "Small Group": "36.67", "1 to 1": "45"},
	"Primary 3":         {"Big Group": "20", "Small Group": "36.67", "1 to 1": "45"},
	"Primary 4":         {"Big Group": "25", "Small Group": "40", "1 to 1": "45"},
	"Primary 5":         {"Big Group": "25", "Small Group": "40", "1 to 1": "45"},
	"Primary 6":         {"Big Group": "25", "Small Group": "40", "1 to 1": "45"},
	"Secondary 1":       {"Big Group": "25", "Small Group": "40", "1 to 1": "50"},
	"Secondary 2":       {"Big Group": "25", "Small Group": "40", "1 to 1": "50"},
	"Secondary 3":       {"Big Group": "30", "Small Group": "45", "1 to 1": "55"},
	"Secondary 4":       {"Big Group": "30", "Small Group": "45", "1 to 1": "55"},
	"Secondary 5":       {"Big Group": "30", "Small Group": "45", "1 to 1": "55"},
	"Junior College 1":  {"Big Group": "40", "Small Group": "60", "1 to 1": "100"},
	"Junior College 2":  {"Big Group": "40", "Small Group": "60", "1 to 1": "100"},
}

// LookupPrice resolves the hourly rate for a (level, classSize) pair.
// Returns "" when the combination is not in the table.
func LookupPrice(level, classSize string) string {
	return pricingTable[level][classSize]
}
