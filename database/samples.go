package database

// Seed rows for the sample tables. Flight dates are offsets in days from
// the time the data is loaded.

type seedFlight struct {
	origin, destination string
	price               float64
	daysAhead           int
	airline             string
}

type seedHotel struct {
	name, location string
	pricePerNight  float64
	rating         float64
}

type seedMinPrice struct {
	origin, destination           string
	minFlightPrice, minHotelPrice float64
}

var seedFlights = []seedFlight{
	{"New York", "Paris", 450, 7, "Air France"},
	{"New York", "London", 400, 7, "British Airways"},
	{"New York", "Tokyo", 850, 8, "Japan Airlines"},
	{"New York", "Sydney", 950, 10, "Qantas"},
	{"New York", "Dubai", 750, 12, "Emirates"},
	{"New York", "Singapore", 900, 13, "Singapore Airlines"},
	{"New York", "San Francisco", 350, 5, "United Airlines"},
	{"New York", "Mumbai", 950, 9, "Air India"},
	{"New York", "Delhi", 920, 11, "Emirates"},
	{"London", "Paris", 120, 8, "EasyJet"},
	{"London", "New York", 420, 9, "British Airways"},
	{"London", "Tokyo", 780, 12, "Japan Airlines"},
	{"London", "Dubai", 380, 14, "Emirates"},
	{"London", "Singapore", 650, 10, "Singapore Airlines"},
	{"London", "San Francisco", 580, 7, "British Airways"},
	{"London", "Sydney", 980, 15, "Qantas"},
	{"London", "Mumbai", 650, 9, "British Airways"},
	{"London", "Delhi", 640, 11, "British Airways"},
	{"Paris", "New York", 460, 9, "Air France"},
	{"Paris", "London", 130, 10, "Air France"},
	{"Paris", "Tokyo", 800, 13, "Air France"},
	{"Paris", "Dubai", 420, 8, "Emirates"},
	{"Paris", "Singapore", 750, 11, "Singapore Airlines"},
	{"Paris", "San Francisco", 620, 9, "Air France"},
	{"Paris", "Mumbai", 700, 10, "Air France"},
	{"Paris", "Delhi", 680, 12, "Air France"},
	{"Tokyo", "New York", 870, 11, "Japan Airlines"},
	{"Tokyo", "London", 790, 12, "British Airways"},
	{"Tokyo", "Singapore", 450, 14, "Singapore Airlines"},
	{"Tokyo", "Paris", 820, 10, "Air France"},
	{"Tokyo", "Dubai", 680, 13, "Emirates"},
	{"Tokyo", "San Francisco", 750, 8, "Japan Airlines"},
	{"Tokyo", "Mumbai", 720, 9, "Japan Airlines"},
	{"Tokyo", "Delhi", 700, 11, "Japan Airlines"},
	{"San Francisco", "New York", 360, 7, "United Airlines"},
	{"San Francisco", "London", 590, 9, "British Airways"},
	{"San Francisco", "Tokyo", 760, 11, "Japan Airlines"},
	{"San Francisco", "Paris", 630, 8, "Air France"},
	{"San Francisco", "Dubai", 890, 13, "Emirates"},
	{"San Francisco", "Singapore", 850, 10, "Singapore Airlines"},
	{"San Francisco", "Mumbai", 920, 12, "United Airlines"},
	{"San Francisco", "Delhi", 900, 14, "United Airlines"},
	{"Sydney", "New York", 970, 12, "Qantas"},
	{"Sydney", "London", 990, 14, "British Airways"},
	{"Sydney", "Singapore", 550, 9, "Singapore Airlines"},
	{"Sydney", "Dubai", 780, 11, "Emirates"},
	{"Sydney", "Mumbai", 820, 13, "Qantas"},
	{"Sydney", "Delhi", 800, 15, "Qantas"},
	{"Dubai", "New York", 760, 10, "Emirates"},
	{"Dubai", "London", 390, 8, "Emirates"},
	{"Dubai", "Paris", 430, 9, "Emirates"},
	{"Dubai", "Tokyo", 690, 12, "Emirates"},
	{"Dubai", "Singapore", 480, 7, "Emirates"},
	{"Dubai", "Sydney", 790, 13, "Emirates"},
	{"Dubai", "San Francisco", 880, 11, "Emirates"},
	{"Dubai", "Mumbai", 320, 6, "Emirates"},
	{"Dubai", "Delhi", 310, 7, "Emirates"},
	{"Singapore", "New York", 910, 13, "Singapore Airlines"},
	{"Singapore", "London", 660, 10, "Singapore Airlines"},
	{"Singapore", "Tokyo", 460, 8, "Singapore Airlines"},
	{"Singapore", "Paris", 760, 11, "Singapore Airlines"},
	{"Singapore", "Dubai", 490, 7, "Singapore Airlines"},
	{"Singapore", "Sydney", 560, 9, "Singapore Airlines"},
	{"Singapore", "San Francisco", 860, 12, "Singapore Airlines"},
	{"Singapore", "Mumbai", 420, 9, "Singapore Airlines"},
	{"Singapore", "Delhi", 430, 10, "Singapore Airlines"},
	{"Mumbai", "New York", 960, 10, "Air India"},
	{"Mumbai", "London", 650, 8, "British Airways"},
	{"Mumbai", "Dubai", 320, 6, "Emirates"},
	{"Mumbai", "Singapore", 420, 9, "Singapore Airlines"},
	{"Mumbai", "Paris", 700, 11, "Air India"},
	{"Mumbai", "Tokyo", 720, 13, "Air India"},
	{"Mumbai", "San Francisco", 920, 15, "Air India"},
	{"Mumbai", "Sydney", 820, 12, "Air India"},
	{"Mumbai", "Delhi", 120, 5, "Air India"},
	{"Delhi", "New York", 930, 11, "Air India"},
	{"Delhi", "London", 640, 9, "British Airways"},
	{"Delhi", "Dubai", 310, 7, "Emirates"},
	{"Delhi", "Singapore", 430, 10, "Singapore Airlines"},
	{"Delhi", "Paris", 670, 12, "Air India"},
	{"Delhi", "Tokyo", 700, 14, "Air India"},
	{"Delhi", "San Francisco", 900, 16, "Air India"},
	{"Delhi", "Sydney", 800, 13, "Air India"},
	{"Delhi", "Mumbai", 120, 5, "Air India"},
}

var seedHotels = []seedHotel{
	{"Grand Plaza Paris", "Paris", 200, 4.5},
	{"Ritz Paris", "Paris", 500, 4.9},
	{"Le Bristol", "Paris", 450, 4.8},
	{"Hotel de Crillon", "Paris", 550, 4.9},
	{"Shangri-La Paris", "Paris", 480, 4.7},
	{"The Savoy", "London", 450, 4.8},
	{"Royal Court Hotel", "London", 180, 4.3},
	{"The Ritz London", "London", 500, 4.9},
	{"Claridge's", "London", 520, 4.9},
	{"The Dorchester", "London", 480, 4.8},
	{"The Plaza", "New York", 400, 4.7},
	{"Empire State Hotel", "New York", 250, 4.6},
	{"St. Regis New York", "New York", 500, 4.8},
	{"Four Seasons New York", "New York", 550, 4.9},
	{"The Peninsula New York", "New York", 520, 4.8},
	{"Park Hyatt Tokyo", "Tokyo", 400, 4.8},
	{"Mandarin Oriental", "Tokyo", 450, 4.9},
	{"The Peninsula", "Tokyo", 500, 4.9},
	{"Aman Tokyo", "Tokyo", 600, 5.0},
	{"Hoshinoya Tokyo", "Tokyo", 550, 4.8},
	{"Burj Al Arab", "Dubai", 1000, 5.0},
	{"Atlantis The Palm", "Dubai", 500, 4.8},
	{"Emirates Palace", "Dubai", 600, 4.9},
	{"One&Only Royal Mirage", "Dubai", 450, 4.7},
	{"Jumeirah Beach Hotel", "Dubai", 380, 4.6},
	{"Marina Bay Sands", "Singapore", 450, 4.8},
	{"Raffles Singapore", "Singapore", 400, 4.9},
	{"The Fullerton", "Singapore", 350, 4.7},
	{"Capella Singapore", "Singapore", 500, 4.9},
	{"Shangri-La Singapore", "Singapore", 380, 4.7},
	{"Fairmont San Francisco", "San Francisco", 380, 4.7},
	{"The Ritz-Carlton", "San Francisco", 450, 4.8},
	{"Palace Hotel", "San Francisco", 320, 4.6},
	{"Four Seasons San Francisco", "San Francisco", 420, 4.7},
	{"St. Regis San Francisco", "San Francisco", 400, 4.7},
	{"Park Hyatt Sydney", "Sydney", 550, 4.9},
	{"Four Seasons Sydney", "Sydney", 450, 4.8},
	{"The Langham Sydney", "Sydney", 420, 4.7},
	{"Shangri-La Sydney", "Sydney", 380, 4.6},
	{"InterContinental Sydney", "Sydney", 350, 4.5},
	{"The Taj Mahal Palace", "Mumbai", 350, 4.8},
	{"The Oberoi Mumbai", "Mumbai", 320, 4.7},
	{"Four Seasons Mumbai", "Mumbai", 280, 4.6},
	{"The Leela Mumbai", "Mumbai", 250, 4.5},
	{"The Oberoi New Delhi", "Delhi", 340, 4.8},
	{"The Leela Palace Delhi", "Delhi", 310, 4.7},
	{"Taj Palace Delhi", "Delhi", 290, 4.6},
	{"The Imperial New Delhi", "Delhi", 270, 4.5},
}

var seedMinPrices = []seedMinPrice{
	{"New York", "Paris", 450, 180},
	{"New York", "London", 400, 160},
	{"New York", "Tokyo", 850, 350},
	{"New York", "Dubai", 750, 450},
	{"New York", "Singapore", 900, 300},
	{"New York", "San Francisco", 350, 300},
	{"New York", "Sydney", 950, 350},
	{"New York", "Mumbai", 950, 250},
	{"New York", "Delhi", 920, 270},
	{"London", "Paris", 120, 150},
	{"London", "New York", 420, 200},
	{"London", "Tokyo", 780, 350},
	{"London", "Dubai", 380, 450},
	{"London", "Singapore", 650, 300},
	{"London", "San Francisco", 580, 300},
	{"London", "Sydney", 980, 350},
	{"London", "Mumbai", 650, 250},
	{"London", "Delhi", 640, 270},
	{"Paris", "New York", 460, 200},
	{"Paris", "London", 130, 160},
	{"Paris", "Tokyo", 800, 350},
	{"Paris", "Dubai", 420, 380},
	{"Paris", "Singapore", 750, 300},
	{"Paris", "San Francisco", 620, 300},
	{"Paris", "Mumbai", 700, 250},
	{"Paris", "Delhi", 680, 270},
	{"Tokyo", "New York", 870, 200},
	{"Tokyo", "London", 790, 160},
	{"Tokyo", "Singapore", 450, 300},
	{"Tokyo", "Paris", 820, 180},
	{"Tokyo", "Dubai", 680, 380},
	{"Tokyo", "San Francisco", 750, 300},
	{"Tokyo", "Mumbai", 720, 250},
	{"Tokyo", "Delhi", 700, 270},
	{"San Francisco", "New York", 360, 200},
	{"San Francisco", "London", 590, 160},
	{"San Francisco", "Tokyo", 760, 350},
	{"San Francisco", "Paris", 630, 180},
	{"San Francisco", "Dubai", 890, 380},
	{"San Francisco", "Singapore", 850, 300},
	{"San Francisco", "Mumbai", 920, 250},
	{"San Francisco", "Delhi", 900, 270},
	{"Sydney", "New York", 970, 200},
	{"Sydney", "London", 990, 160},
	{"Sydney", "Singapore", 550, 300},
	{"Sydney", "Dubai", 780, 380},
	{"Sydney", "Mumbai", 820, 250},
	{"Sydney", "Delhi", 800, 270},
	{"Dubai", "New York", 760, 200},
	{"Dubai", "London", 390, 160},
	{"Dubai", "Paris", 430, 180},
	{"Dubai", "Tokyo", 690, 350},
	{"Dubai", "Singapore", 480, 300},
	{"Dubai", "Sydney", 790, 350},
	{"Dubai", "San Francisco", 880, 300},
	{"Dubai", "Mumbai", 320, 250},
	{"Dubai", "Delhi", 310, 270},
	{"Singapore", "New York", 910, 200},
	{"Singapore", "London", 660, 160},
	{"Singapore", "Tokyo", 460, 350},
	{"Singapore", "Paris", 760, 180},
	{"Singapore", "Dubai", 490, 380},
	{"Singapore", "Sydney", 560, 350},
	{"Singapore", "San Francisco", 860, 300},
	{"Singapore", "Mumbai", 420, 250},
	{"Singapore", "Delhi", 430, 270},
	{"Mumbai", "New York", 960, 200},
	{"Mumbai", "London", 650, 160},
	{"Mumbai", "Dubai", 320, 380},
	{"Mumbai", "Singapore", 420, 300},
	{"Mumbai", "Paris", 700, 180},
	{"Mumbai", "Tokyo", 720, 350},
	{"Mumbai", "San Francisco", 920, 300},
	{"Mumbai", "Sydney", 820, 350},
	{"Mumbai", "Delhi", 120, 270},
	{"Delhi", "New York", 930, 200},
	{"Delhi", "London", 640, 160},
	{"Delhi", "Dubai", 310, 380},
	{"Delhi", "Singapore", 430, 300},
	{"Delhi", "Paris", 670, 180},
	{"Delhi", "Tokyo", 700, 350},
	{"Delhi", "San Francisco", 900, 300},
	{"Delhi", "Sydney", 800, 350},
	{"Delhi", "Mumbai", 120, 250},
}
