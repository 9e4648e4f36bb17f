package credentials

// Option configures a Store.
type Option func(*Store)

// WithClearPaths adds extra cookie paths to target during Clear, for
// deployments that scope credential cookies under additional route prefixes.
func WithClearPaths(paths ...string) Option {
	return func(s *Store) {
		s.paths = append(s.paths, paths...)
	}
}

// WithClearDomains adds extra cookie domains to target during Clear.
func WithClearDomains(domains ...string) Option {
	return func(s *Store) {
		s.domains = append(s.domains, domains...)
	}
}
