package model

// StatView is one animated counter in the stats band.
type StatView struct {
	Label     string
	Value     int64
	Formatted string
}

// PageView is everything the landing page template needs.
type PageView struct {
	Title       string
	BasePath    string
	Lang        string
	Stats       []StatView
	Events      []EventView
	Forecast    ForecastView
	StreamPath  string
	WidgetPath  string
	GeneratedAt string
}
