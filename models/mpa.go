package models

// Mpa is a Motion Picture Association rating attached to a film.
// It is a read-only lookup value; rows are seeded by migration and
// joined into film queries under the "mpa_name" alias.
type Mpa struct {
	// ID is the primary key of the rating in the "mpa" table.
	ID int `json:"id"`

	// Name is the display label, e.g. "G" or "PG-13".
	Name string `json:"name,omitempty"`
}

// TableName returns the name of the database table
// associated with the Mpa model.
func (m Mpa) TableName() string {
	return "mpa"
}
