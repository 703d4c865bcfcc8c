package redis

import "fmt"

const (
	// KeyPrefixInteraction is the prefix for donated interaction keys
	KeyPrefixInteraction = "shortcuts:interaction:"
	// KeyInteractionsByTime is the sorted set of interaction IDs scored by donation time
	KeyInteractionsByTime = "shortcuts:interactions:by-time"
	// KeyUsage is the hash of perform counters, one field per action
	KeyUsage = "shortcuts:usage"
)

// InteractionKey returns the Redis key for a donated interaction by ID
func InteractionKey(id string) string {
	return KeyPrefixInteraction + id
}

// ExtractInteractionID extracts the interaction ID from a Redis key
func ExtractInteractionID(key string) (string, error) {
	if len(key) <= len(KeyPrefixInteraction) {
		return "", fmt.Errorf("invalid interaction key: %s", key)
	}
	return key[len(KeyPrefixInteraction):], nil
}
