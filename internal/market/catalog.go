package market

// DefaultStocks is the fixed starting catalog.
func DefaultStocks() []Stock {
	return []Stock{
		{Symbol: "Tesla", InitialPrice: 300},
		{Symbol: "Apple", InitialPrice: 200},
		{Symbol: "Amazon", InitialPrice: 250},
		{Symbol: "Google", InitialPrice: 350},
	}
}

// CompanyEvents returns the scripted event catalog per stock. Effects
// are percentage ranges; a negative range is bad news.
func CompanyEvents() map[Symbol][]CompanyEvent {
	return map[Symbol][]CompanyEvent{
		"Tesla": {
			{"Tesla unveils a new model", 5, 15},
			{"Tesla presents the Cybertruck", 10, 25},
			{"Elon Musk tweets about Bitcoin", -15, -5},
			{"Tesla battery defect discovered", -20, -10},
			{"Tesla posts record revenue", 10, 20},
			{"Tesla hit by legal trouble", -25, -15},
			{"Strike at Tesla factory", -15, -5},
			{"Tesla wins innovation award", 15, 30},
			{"Tesla beats production targets", 5, 10},
			{"Tesla rolls out autonomous driving", 20, 35},
		},
		"Apple": {
			{"Apple launches a new iPhone", 10, 20},
			{"Apple loses a lawsuit", -20, -10},
			{"Apple starts a new streaming service", 5, 15},
			{"Apple announces price increase", 3, 8},
			{"Apple reveals revolutionary chip", 15, 25},
			{"Security flaws found in Apple devices", -15, -8},
			{"Apple misses quarterly targets", -25, -15},
			{"Analysts recommend Apple stock", 5, 12},
			{"Apple invests in renewable energy", 3, 10},
			{"Apple announces device recall", -10, -5},
		},
		"Amazon": {
			{"Amazon posts record Prime Day sales", 15, 30},
			{"Amazon delivery problems over the holidays", -15, -8},
			{"Amazon introduces drone deliveries", 10, 20},
			{"Amazon criticized for tax avoidance", -10, -5},
			{"Amazon expands cloud offering", 5, 15},
			{"Amazon loses a lawsuit", -25, -15},
			{"Amazon opens new logistics centers", 3, 8},
			{"Amazon acquires a tech startup", 10, 20},
			{"Amazon workers go on strike", -20, -10},
			{"Amazon server outage disrupts services", -30, -20},
		},
		"Google": {
			{"Google ships AI update for search", 10, 20},
			{"Google sued over monopoly position", -20, -15},
			{"Google invests in quantum computing", 8, 15},
			{"Google server outage worldwide", -25, -20},
			{"Google announces new Android update", 5, 12},
			{"Google misses revenue forecasts", -15, -10},
			{"Google presents revolutionary AI", 15, 25},
			{"Google offices raided by regulators", -30, -20},
			{"Google posts record profits", 20, 30},
			{"Google invests in renewable energy", 5, 15},
		},
	}
}
