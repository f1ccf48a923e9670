package domain

// Village - зарегистрированная деревня из village feature collection.
// Immutable after the one-time data load.
type Village struct {
	Name     string `json:"name"`
	State    string `json:"state"`
	Location Point  `json:"location"`
}
