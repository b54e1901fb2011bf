package s3sig

// requireObjectKey returns ErrEmptyObjectKey wrapped in a *ParameterError if
// key is empty. Every action addressing a single object shares this check.
func requireObjectKey(action, key string) error {
	if key == "" {
		return &ParameterError{Action: action, Field: "key", Value: key, Err: ErrEmptyObjectKey}
	}
	return nil
}
