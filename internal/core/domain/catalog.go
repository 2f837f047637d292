package domain

import "fmt"

// Catalog holds the facility's fixed reference data. It never changes while
// the process runs.
type Catalog struct {
	Beds    []string `yaml:"beds"`
	Genders []string `yaml:"genders"`
}

// DefaultBeds returns the facility's built-in bed list.
func DefaultBeds() []string {
	var beds []string
	for i := 1; i <= 9; i++ {
		beds = append(beds, fmt.Sprintf("MD %d", i))
	}
	for i := 1; i <= 7; i++ {
		beds = append(beds, fmt.Sprintf("FD %d", i))
	}
	for i := 1; i <= 2; i++ {
		beds = append(beds, fmt.Sprintf("XD %d", i))
	}
	for i := 1; i <= 2; i++ {
		beds = append(beds, fmt.Sprintf("CR %d", i))
	}
	return beds
}

// DefaultGenders returns the built-in gender choices.
func DefaultGenders() []string {
	return []string{"Male", "Female", "Transgender Male", "Transgender Female"}
}

// DefaultCatalog returns the built-in facility catalog.
func DefaultCatalog() Catalog {
	return Catalog{Beds: DefaultBeds(), Genders: DefaultGenders()}
}

// HasBed reports whether bed is part of the catalog.
func (c Catalog) HasBed(bed string) bool {
	return contains(c.Beds, bed)
}

// HasGender reports whether gender is one of the catalog's choices.
func (c Catalog) HasGender(gender string) bool {
	return contains(c.Genders, gender)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
