package entity

type Facility struct {
	Base
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Type        string  `db:"type"`
	Capacity    int     `db:"capacity"`
	HourlyRate  float64 `db:"hourly_rate"`
	IsAvailable bool    `db:"is_available"`
	ImageURL    *string `db:"image_url"`
}
