package racetime

import "net/url"

var _ Endpoint = UserData{}

// UserData returns a user's profile. Its response decodes into UserProfile.
type UserData struct {
	id string
}

// NewUserData returns a UserData for the user's ID (the hash shown in the user's profile URL).
func NewUserData(id string) UserData {
	return UserData{id: id}
}

func (u UserData) RelativePath() string {
	return "user/" + url.PathEscape(u.id) + "/data"
}
