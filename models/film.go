package models

// Film represents a movie entity stored in the "films" table.
//
// The scalar fields map one-to-one onto table columns; Mpa is joined in from
// the "mpa" lookup table on every read, while Genres live in the
// "film_genre" association table and are loaded separately.
type Film struct {
	// ID is the storage-assigned primary key. Zero until the film is
	// persisted for the first time.
	ID int64 `json:"id"`

	// Name is the film title. Must be non-empty on create.
	Name string `json:"name"`

	// Description is a short synopsis, at most 200 characters.
	Description string `json:"description"`

	// ReleaseDate is the theatrical release date. Serialized as
	// "yyyy-mm-dd" in JSON.
	ReleaseDate Date `json:"releaseDate"`

	// Duration is the running time in minutes.
	Duration int `json:"duration"`

	// Mpa is the film's MPA rating joined from the lookup table.
	Mpa Mpa `json:"mpa"`

	// Genres is the set of genre classifications attached to the film.
	// Not populated by list/find queries; loaded via a separate call.
	Genres []Genre `json:"genres,omitempty"`
}

// TableName returns the name of the database table
// associated with the Film model.
func (f Film) TableName() string {
	return "films"
}
