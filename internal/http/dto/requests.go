package dto

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Country   string `json:"country"`
	UserType  string `json:"user_type"` // patient / doctor
	Specialty string `json:"specialty,omitempty"`
	City      string `json:"city,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

type CreatePracticeRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
}

type CreateServiceRequest struct {
	PracticeID  string `json:"practice_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceUSD    string `json:"price_usd"`
}

type UpdateOnboardingRequest struct {
	Step      int  `json:"step"`
	Completed bool `json:"completed"`
}
