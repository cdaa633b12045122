package ctxval

// Location is a store-native address for a single spec, returned by 'Context.Resolve' for callers which need to hand
// the object off to another tool rather than stream it.
type Location struct {
	// Bucket is the bucket containing the object.
	Bucket string

	// Key is the full key of the object within the bucket.
	Key string

	// Endpoint is the store endpoint, populated only when the owning context was configured with one.
	Endpoint string
}
