package trip

// Schema tells which optional columns the dataset of a city has
type Schema struct {
	HasGender    bool
	HasBirthYear bool
}

// Collection ordered trips of a city. A Collection never modifies the trips it holds, and the
// collections returned by Filter share the trips with their source.
type Collection struct {
	city   string
	schema Schema
	trips  []*TripData
}

func NewCollection(city string, schema Schema, trips []*TripData) *Collection {
	return &Collection{
		city:   city,
		schema: schema,
		trips:  trips,
	}
}

func (c *Collection) GetCity() string {
	return c.city
}

func (c *Collection) GetSchema() Schema {
	return c.schema
}

func (c *Collection) Len() int {
	return len(c.trips)
}

func (c *Collection) IsEmpty() bool {
	return len(c.trips) == 0
}

// At returns the trip in the idx position. It panics if idx is out of range
func (c *Collection) At(idx int) *TripData {
	return c.trips[idx]
}

// Slice returns the trips in [from, to) as a new Collection. Bounds are clamped to the collection size
func (c *Collection) Slice(from int, to int) *Collection {
	if from < 0 {
		from = 0
	}
	if to > len(c.trips) {
		to = len(c.trips)
	}
	if from >= to {
		return NewCollection(c.city, c.schema, nil)
	}
	return NewCollection(c.city, c.schema, c.trips[from:to:to])
}

// Filter returns a new Collection with the trips that satisfy keep, in the same order
func (c *Collection) Filter(keep func(*TripData) bool) *Collection {
	var kept []*TripData
	for _, tripData := range c.trips {
		if keep(tripData) {
			kept = append(kept, tripData)
		}
	}
	return NewCollection(c.city, c.schema, kept)
}
