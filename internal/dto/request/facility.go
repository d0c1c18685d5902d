package request

type FacilityRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description"`
	Type        string  `json:"type" validate:"required"`
	Capacity    int     `json:"capacity" validate:"required,min=1"`
	HourlyRate  float64 `json:"hourlyRate" validate:"required,gt=0"`
	IsAvailable bool    `json:"isAvailable"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}
