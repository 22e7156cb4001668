package domain

// KeyPrefix namespaces every key mnemo writes to the shared KV store.
const KeyPrefix = "mnemo:"
