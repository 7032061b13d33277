package weather

const (
	// ReplyFormat is filled with city, description, temperature and unit symbol.
	ReplyFormat = "The weather in %s is %s with a temperature of %.2f%s."

	// ApologyFormat is filled with the city that could not be looked up.
	ApologyFormat = "Sorry, couldn't fetch weather for %s."
)
