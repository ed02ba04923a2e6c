package station

import "github.com/umahmood/haversine"

// StationData coordinates of a station of some city
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewStationData(city string, name string, latitude float64, longitude float64) *StationData {
	return &StationData{
		City:      city,
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// DistanceTo returns the distance in km between both stations using haversine formula
func (sd *StationData) DistanceTo(other *StationData) float64 {
	from := haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
	to := haversine.Coord{Lat: other.Latitude, Lon: other.Longitude}
	_, km := haversine.Distance(from, to)
	return km
}

// Directory stations of a city indexed by name
type Directory map[string]*StationData

func (d Directory) Add(stationData *StationData) {
	d[stationData.Name] = stationData
}

// Distance returns the distance in km between two stations of the directory. The boolean is false
// if any of them is unknown
func (d Directory) Distance(startStation string, endStation string) (float64, bool) {
	from, ok := d[startStation]
	if !ok {
		return 0, false
	}
	to, ok := d[endStation]
	if !ok {
		return 0, false
	}
	return from.DistanceTo(to), true
}
