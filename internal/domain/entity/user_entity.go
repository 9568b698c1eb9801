package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Username and UserCode are assigned once at registration and never change;
// no update path in the repositories touches them.
//
// Follower/following relations are not embedded here: they live as edge
// rows (see FollowEdge) and are surfaced as counts.
type User struct {
	ID        string
	Email     string
	Username  string
	UserCode  string
	Name      string
	Bio       string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FollowEdge is a single directed follow relation. Storing the relation as
// one row keyed by (FollowerID, FolloweeID) keeps the two sides of the
// graph consistent by construction.
type FollowEdge struct {
	FollowerID string
	FolloweeID string
	CreatedAt  time.Time
}
