package helpers

// Form DTOs bound from browser POSTs

type CredentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type NewItemForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Duration    int    `form:"duration"`
}

type BidFormRequest struct {
	Amount string `form:"amount"`
}

// DurationOption is one entry of the auction-length selector
type DurationOption struct {
	Label   string
	Seconds int
}

// DurationOptions are the only auction lengths the form accepts
var DurationOptions = []DurationOption{
	{Label: "One Minute", Seconds: 60},
	{Label: "Ten Minutes", Seconds: 60 * 10},
	{Label: "One Day", Seconds: 60 * 60 * 24},
	{Label: "One Week", Seconds: 60 * 60 * 24 * 7},
}
