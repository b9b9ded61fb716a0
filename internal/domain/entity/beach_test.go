package entity

import "testing"

func TestBeachByKeyRegionCodes(t *testing.T) {
	tests := []struct {
		key        LocationKey
		name       string
		regionCode string
	}{
		{key: Anyer, name: "Pantai Anyer", regionCode: "36.04.30.2005"},
		{key: Carita, name: "Pantai Carita", regionCode: "36.01.28.2003"},
		{key: Sawarna, name: "Pantai Sawarna", regionCode: "36.02.03.2002"},
		{key: TanjungLesung, name: "Tanjung Lesung", regionCode: "36.01.06.2012"},
		{key: Labuan, name: "Pantai Labuan", regionCode: "36.01.12.2010"},
		{key: Bagedur, name: "Pantai Bagedur", regionCode: "36.02.01.2023"},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			beach, ok := BeachByKey(tt.key)
			if !ok {
				t.Fatalf("BeachByKey(%s) not found", tt.key)
			}
			if beach.Name != tt.name {
				t.Errorf("Name = %s, want %s", beach.Name, tt.name)
			}
			if beach.RegionCode != tt.regionCode {
				t.Errorf("RegionCode = %s, want %s", beach.RegionCode, tt.regionCode)
			}
		})
	}
}

func TestKnownLocation(t *testing.T) {
	if !KnownLocation(Carita) {
		t.Error("KnownLocation(carita) = false")
	}
	if KnownLocation("kuta") {
		t.Error("KnownLocation(kuta) = true")
	}
}

func TestAllBeachesOrder(t *testing.T) {
	all := AllBeaches()
	if len(all) != 6 {
		t.Fatalf("len(AllBeaches()) = %d, want 6", len(all))
	}
	want := []LocationKey{Anyer, Carita, Sawarna, TanjungLesung, Labuan, Bagedur}
	for i, beach := range all {
		if beach.Key != want[i] {
			t.Errorf("AllBeaches()[%d] = %s, want %s", i, beach.Key, want[i])
		}
	}
}

func TestOceanConditionsCoverEveryBeach(t *testing.T) {
	for _, key := range AllLocationKeys() {
		conditions, ok := OceanConditionsByKey(key)
		if !ok {
			t.Errorf("OceanConditionsByKey(%s) not found", key)
			continue
		}
		if conditions.WaveHeight == "" {
			t.Errorf("OceanConditionsByKey(%s) has empty wave height", key)
		}
	}
}
