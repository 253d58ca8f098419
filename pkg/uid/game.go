package uid

import "github.com/google/uuid"

// GenerateGameID returns a random game ID.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateConnID returns a random ID for a websocket connection.
func GenerateConnID() string {
	return "conn-" + uuid.NewString()
}
