package models

import (
	"encoding/json"
	"slices"
)

// User represents an application user stored in the "users" table.
//
// Field constraints (non-negative id, required login, valid email, birthday
// not in the future) are not enforced by the entity itself; they are checked
// at the system boundary by the validators package before a User reaches
// any persistence call.
type User struct {
	// ID is the storage-assigned primary key. Must be non-negative.
	ID int64 `json:"id"`

	// Email is the user's e-mail address. Must be syntactically valid.
	Email string `json:"email"`

	// Login is the unique user login identifier. Required.
	Login string `json:"login"`

	// Name is the display name. When empty it defaults to Login at the
	// service boundary.
	Name string `json:"name"`

	// Birthday is the user's date of birth. Required and must not be in
	// the future. Serialized as "yyyy-mm-dd" in JSON.
	Birthday Date `json:"birthday"`

	// Friends is the set of friend user identifiers. Populated per call
	// by single-user lookups; list queries leave it empty and the field
	// is then omitted from JSON.
	Friends FriendSet `json:"friends,omitempty"`
}

// FriendSet holds friend user identifiers keyed by id, so duplicates collapse
// and membership checks are constant-time. It serializes as a sorted JSON
// array of ids.
type FriendSet map[int64]struct{}

// MarshalJSON renders the set as a sorted array of user ids.
func (s FriendSet) MarshalJSON() ([]byte, error) {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return json.Marshal(ids)
}

// UnmarshalJSON accepts an array of user ids and rebuilds the set.
func (s *FriendSet) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}

	set := make(FriendSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	*s = set

	return nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AddFriend records friendID in the friend set, allocating the set on
// first use.
func (u *User) AddFriend(friendID int64) {
	if u.Friends == nil {
		u.Friends = make(FriendSet)
	}
	u.Friends[friendID] = struct{}{}
}

// HasFriend reports whether friendID is present in the friend set.
func (u *User) HasFriend(friendID int64) bool {
	_, ok := u.Friends[friendID]
	return ok
}
