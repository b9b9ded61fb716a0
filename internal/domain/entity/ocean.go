package entity

// OceanConditions is the fixed simulated oceanographic record for a beach.
// Tide, wave, salinity and current values are not available from the BMKG
// forecast feed, so the dashboard serves these constants alongside the
// real-time weather data.
type OceanConditions struct {
	TideStatus   string `json:"tideStatus"`
	TideHeight   string `json:"tideHeight"`
	NextHighTide string `json:"nextHighTide"`
	NextLowTide  string `json:"nextLowTide"`
	SeaTemp      string `json:"seaTemp"`
	Salinity     string `json:"salinity"`
	WaveHeight   string `json:"waveHeight"`
	WavePeriod   string `json:"wavePeriod"`
	Current      string `json:"current"`
}

var oceanConditions = map[LocationKey]OceanConditions{
	Anyer: {
		TideStatus:   "Pasang",
		TideHeight:   "1.8 m",
		NextHighTide: "14:30",
		NextLowTide:  "20:15",
		SeaTemp:      "29.2°C",
		Salinity:     "33.5 PSU",
		WaveHeight:   "0.8 m",
		WavePeriod:   "5.2 detik",
		Current:      "0.5 m/s",
	},
	Carita: {
		TideStatus:   "Surut",
		TideHeight:   "0.9 m",
		NextHighTide: "15:45",
		NextLowTide:  "21:30",
		SeaTemp:      "28.8°C",
		Salinity:     "33.2 PSU",
		WaveHeight:   "1.1 m",
		WavePeriod:   "5.8 detik",
		Current:      "0.6 m/s",
	},
	Sawarna: {
		TideStatus:   "Pasang",
		TideHeight:   "2.1 m",
		NextHighTide: "13:15",
		NextLowTide:  "19:45",
		SeaTemp:      "29.5°C",
		Salinity:     "34.0 PSU",
		WaveHeight:   "1.5 m",
		WavePeriod:   "6.5 detik",
		Current:      "0.8 m/s",
	},
	TanjungLesung: {
		TideStatus:   "Surut",
		TideHeight:   "0.7 m",
		NextHighTide: "16:00",
		NextLowTide:  "22:00",
		SeaTemp:      "29.0°C",
		Salinity:     "33.3 PSU",
		WaveHeight:   "0.6 m",
		WavePeriod:   "4.8 detik",
		Current:      "0.4 m/s",
	},
	Labuan: {
		TideStatus:   "Pasang",
		TideHeight:   "1.6 m",
		NextHighTide: "14:45",
		NextLowTide:  "20:30",
		SeaTemp:      "28.5°C",
		Salinity:     "33.0 PSU",
		WaveHeight:   "1.3 m",
		WavePeriod:   "6.0 detik",
		Current:      "0.7 m/s",
	},
	Bagedur: {
		TideStatus:   "Surut",
		TideHeight:   "1.0 m",
		NextHighTide: "15:30",
		NextLowTide:  "21:15",
		SeaTemp:      "29.8°C",
		Salinity:     "33.8 PSU",
		WaveHeight:   "0.9 m",
		WavePeriod:   "5.5 detik",
		Current:      "0.5 m/s",
	},
}

// OceanConditionsByKey returns the simulated oceanographic record for key.
func OceanConditionsByKey(key LocationKey) (OceanConditions, bool) {
	oc, ok := oceanConditions[key]
	return oc, ok
}
