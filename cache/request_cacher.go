package cache

// RequestCacher keeps a short per-key history of student chat requests.
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}
