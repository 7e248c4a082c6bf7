package entity

type CleanupEvent struct {
	ID          string  `json:"id" mapstructure:"id"`
	Title       string  `json:"title" mapstructure:"title"`
	Beach       string  `json:"beach" mapstructure:"beach"`
	Date        string  `json:"date" mapstructure:"date"`
	Time        string  `json:"time" mapstructure:"time"`
	Latitude    float64 `json:"latitude" mapstructure:"latitude"`
	Longitude   float64 `json:"longitude" mapstructure:"longitude"`
	SpotsLeft   int     `json:"spotsLeft" mapstructure:"spots-left"`
	Description string  `json:"description" mapstructure:"description"`
}
