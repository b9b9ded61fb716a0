package entity

// LocationKey identifies one of the monitored beaches on the Banten coast.
type LocationKey string

const (
	Anyer         LocationKey = "anyer"
	Carita        LocationKey = "carita"
	Sawarna       LocationKey = "sawarna"
	TanjungLesung LocationKey = "tanjunglesung"
	Labuan        LocationKey = "labuan"
	Bagedur       LocationKey = "bagedur"
)

// Beach holds the static identity of a monitored beach.
type Beach struct {
	Key        LocationKey `json:"key"`
	Name       string      `json:"name"`
	RegionCode string      `json:"regionCode"`
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
}

// beaches maps each location to its BMKG level-4 administrative region code
// and map coordinates.
var beaches = map[LocationKey]Beach{
	Anyer:         {Key: Anyer, Name: "Pantai Anyer", RegionCode: "36.04.30.2005", Latitude: -6.0879, Longitude: 105.8838},
	Carita:        {Key: Carita, Name: "Pantai Carita", RegionCode: "36.01.28.2003", Latitude: -6.2959, Longitude: 105.8309},
	Sawarna:       {Key: Sawarna, Name: "Pantai Sawarna", RegionCode: "36.02.03.2002", Latitude: -6.9849, Longitude: 106.3006},
	TanjungLesung: {Key: TanjungLesung, Name: "Tanjung Lesung", RegionCode: "36.01.06.2012", Latitude: -6.4793, Longitude: 105.6533},
	Labuan:        {Key: Labuan, Name: "Pantai Labuan", RegionCode: "36.01.12.2010", Latitude: -6.3714, Longitude: 105.8189},
	Bagedur:       {Key: Bagedur, Name: "Pantai Bagedur", RegionCode: "36.02.01.2023", Latitude: -6.8139, Longitude: 105.9821},
}

// order keeps listings stable regardless of map iteration.
var beachOrder = []LocationKey{Anyer, Carita, Sawarna, TanjungLesung, Labuan, Bagedur}

// KnownLocation reports whether key identifies a monitored beach.
func KnownLocation(key LocationKey) bool {
	_, ok := beaches[key]
	return ok
}

// BeachByKey returns the beach identified by key.
func BeachByKey(key LocationKey) (Beach, bool) {
	b, ok := beaches[key]
	return b, ok
}

// AllBeaches returns every monitored beach in display order.
func AllBeaches() []Beach {
	result := make([]Beach, 0, len(beachOrder))
	for _, key := range beachOrder {
		result = append(result, beaches[key])
	}
	return result
}

// AllLocationKeys returns the keys of every monitored beach in display order.
func AllLocationKeys() []LocationKey {
	keys := make([]LocationKey, len(beachOrder))
	copy(keys, beachOrder)
	return keys
}
