package domain

// DefaultRoom is where a join lands when no room is requested.
const DefaultRoom = "general"

// JoinRequest carries a join/leave/subscribe intent. It is transient and
// never stored. An empty Username means "allocate one for me".
type JoinRequest struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// Normalized returns a copy with the room defaulted to "general" when absent.
func (r JoinRequest) Normalized() JoinRequest {
	if r.Room == "" {
		r.Room = DefaultRoom
	}
	return r
}
