package models

// Genre is a film genre classification. Like [Mpa] it is a read-only
// lookup value seeded by migration; films reference it through the
// "film_genre" association table.
type Genre struct {
	// ID is the primary key of the genre in the "genres" table.
	ID int `json:"id"`

	// Name is the display label, e.g. "Comedy".
	Name string `json:"name,omitempty"`
}

// TableName returns the name of the database table
// associated with the Genre model.
func (g Genre) TableName() string {
	return "genres"
}
