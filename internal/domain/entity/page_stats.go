package entity

// PageStats are the impact counters shown on the landing page.
type PageStats struct {
	Volunteers int64
	Kilograms  int64
	Beaches    int64
}
