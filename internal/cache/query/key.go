package query

// Key identifies a cached resource. Two requests with equal keys share one entry.
//
// Callers must fold every parameter that changes the response into the key.
// A key that changes between calls meant to address the same resource
// silently creates a new entry; the client cannot detect that.
type Key string

func (k Key) String() string {
	return string(k)
}
