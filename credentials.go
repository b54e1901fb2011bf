package s3sig

import "fmt"

// Credentials holds an AWS access key id, secret access key, and an optional
// session token. The secret is held in a buffer that callers can explicitly
// wipe via Wipe. Go's garbage collector gives no deterministic finalization
// hook, so callers that need the secret gone from memory promptly must call
// Wipe themselves rather than rely on garbage collection.
type Credentials struct {
	key          string
	secret       []byte
	sessionToken string
}

// NewCredentials constructs a Credentials value from an access key id and
// secret access key.
func NewCredentials(accessKeyID, secretAccessKey string) *Credentials {
	return &Credentials{
		key:    accessKeyID,
		secret: []byte(secretAccessKey),
	}
}

// NewSessionCredentials constructs a Credentials value carrying a temporary
// session token, as returned by AWS STS AssumeRole or similar.
func NewSessionCredentials(accessKeyID, secretAccessKey, sessionToken string) *Credentials {
	c := NewCredentials(accessKeyID, secretAccessKey)
	c.sessionToken = sessionToken
	return c
}

// Key returns the access key id.
func (c *Credentials) Key() string { return c.key }

// Secret returns the secret access key as a string. Each call allocates a new
// string; callers signing many requests in a hot loop with a long-lived
// Credentials value should expect this allocation rather than caching it
// where the secret could be retained longer than necessary.
func (c *Credentials) Secret() string { return string(c.secret) }

// SessionToken returns the session token, or the empty string if none was
// set.
func (c *Credentials) SessionToken() string { return c.sessionToken }

// HasSessionToken reports whether a session token is present.
func (c *Credentials) HasSessionToken() bool { return c.sessionToken != "" }

// Wipe overwrites the secret access key's backing bytes with zeroes. After
// Wipe, Secret returns an empty string. Call Wipe once the Credentials value
// is no longer needed; Go provides no destructor to do this automatically.
func (c *Credentials) Wipe() {
	for i := range c.secret {
		c.secret[i] = 0
	}
	c.secret = c.secret[:0]
}

// String implements fmt.Stringer without ever including the secret or
// session token, so that accidentally logging a Credentials value cannot leak
// key material.
func (c *Credentials) String() string {
	return fmt.Sprintf("Credentials{Key: %q}", c.key)
}
