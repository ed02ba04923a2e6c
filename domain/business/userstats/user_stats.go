package userstats

import (
	"fmt"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

const (
	ReportType = "user-stats"
	male       = "Male"
	female     = "Female"
)

// UserTypeCount amount of trips made by some user type
type UserTypeCount struct {
	UserType string `json:"user_type"`
	Count    int    `json:"count"`
}

// GenderCounts amount of trips made by male and female users. Trips with any other value are not counted
type GenderCounts struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// BirthYearStats computed over the trips that have a birth year. Count is zero when none of them has one
type BirthYearStats struct {
	Count        int `json:"count"`
	Earliest     int `json:"earliest"`
	MostRecent   int `json:"most_recent"`
	MostFrequent int `json:"most_frequent"`
}

// UserStats demographics of the users.
// + UserTypes: sorted by count in descending order, ties keep the order of first appearance
// + Gender: nil when the dataset has no Gender column
// + BirthYears: nil when the dataset has no Birth Year column
type UserStats struct {
	UserTypes  []UserTypeCount `json:"user_types"`
	Gender     *GenderCounts   `json:"gender,omitempty"`
	BirthYears *BirthYearStats `json:"birth_years,omitempty"`
}

func (us *UserStats) GetType() string {
	return ReportType
}

// GetGenderCounts returns ErrSchemaMissingField if the dataset does not record gender
func (us *UserStats) GetGenderCounts() (*GenderCounts, error) {
	if us.Gender == nil {
		return nil, fmt.Errorf("[%s] gender: %w", ReportType, dataErrors.ErrSchemaMissingField)
	}
	return us.Gender, nil
}

// GetBirthYearStats returns ErrSchemaMissingField if the dataset does not record birth years
func (us *UserStats) GetBirthYearStats() (*BirthYearStats, error) {
	if us.BirthYears == nil {
		return nil, fmt.Errorf("[%s] birth year: %w", ReportType, dataErrors.ErrSchemaMissingField)
	}
	return us.BirthYears, nil
}

// Calculate returns the count of each user type, plus gender counts and birth year stats if the
// schema of the collection has those columns. Trips without user type are not counted.
// Fails with ErrEmptyInput if the collection has no trips
func Calculate(trips *trip.Collection) (*UserStats, error) {
	if trips.IsEmpty() {
		return nil, fmt.Errorf("[%s] cannot calculate user stats: %w", ReportType, dataErrors.ErrEmptyInput)
	}

	schema := trips.GetSchema()
	userTypes := modecounter.NewModeCounter[string]()
	birthYears := modecounter.NewModeCounter[int]()
	genderCounts := &GenderCounts{}
	birthYearStats := &BirthYearStats{}

	for idx := 0; idx < trips.Len(); idx++ {
		tripData := trips.At(idx)
		if tripData.UserType != "" {
			userTypes.Add(tripData.UserType)
		}

		if schema.HasGender && tripData.Gender != nil {
			switch *tripData.Gender {
			case male:
				genderCounts.Male += 1
			case female:
				genderCounts.Female += 1
			}
		}

		if schema.HasBirthYear && tripData.BirthYear != nil {
			updateBirthYearStats(birthYearStats, *tripData.BirthYear)
			birthYears.Add(*tripData.BirthYear)
		}
	}

	stats := &UserStats{}
	for _, entry := range userTypes.Entries() {
		stats.UserTypes = append(stats.UserTypes, UserTypeCount{UserType: entry.Value, Count: entry.Count})
	}

	if schema.HasGender {
		stats.Gender = genderCounts
	}

	if schema.HasBirthYear {
		birthYearStats.MostFrequent, _, _ = birthYears.Mode()
		stats.BirthYears = birthYearStats
	}

	return stats, nil
}

func updateBirthYearStats(stats *BirthYearStats, birthYear int) {
	if stats.Count == 0 || birthYear < stats.Earliest {
		stats.Earliest = birthYear
	}
	if stats.Count == 0 || birthYear > stats.MostRecent {
		stats.MostRecent = birthYear
	}
	stats.Count += 1
}
