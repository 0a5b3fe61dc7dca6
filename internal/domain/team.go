package domain

// Team is a competing clan. Names are stored lowercase.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TeamMember links a game username to a team. A username belongs to at
// most one team at a time.
type TeamMember struct {
	Username string `json:"username"`
	TeamID   int    `json:"team_id"`
}

// Resource is one row of a team's ledger. Quantity never goes negative.
type Resource struct {
	TeamID   int    `json:"team_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
}

// Building is a team's instance of a catalog building.
type Building struct {
	TeamID int    `json:"team_id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
}
