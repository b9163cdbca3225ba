package redis

const (
	// KeySnapshot holds the JSON of the last loaded link snapshot,
	// the diff baseline that survives restarts.
	KeySnapshot = "hub:snapshot:last"
	// KeyGeneratedGroups is the list of diff-generated changelog
	// groups, oldest first.
	KeyGeneratedGroups = "hub:changelog:generated"
)
