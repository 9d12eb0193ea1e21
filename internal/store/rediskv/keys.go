package rediskv

// KeyPrefix namespaces every mirrored shell key in Redis.
const KeyPrefix = "glassd:kv:"

// Key returns the Redis key for a top-level store key.
func Key(name string) string {
	return KeyPrefix + name
}
