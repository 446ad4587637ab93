package storage

import "context"

type prefixed struct {
	inner  Store
	prefix string
}

// Prefixed namespaces every key with prefix, e.g. "visitor:<id>:" + "cart".
func Prefixed(s Store, prefix string) Store {
	return &prefixed{inner: s, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return p.inner.Update(ctx, p.prefix+key, fn)
}

// VisitorPrefix is the key namespace for one browser.
func VisitorPrefix(visitorID string) string {
	return "visitor:" + visitorID + ":"
}
