package mock

import "github.com/fwojciec/docmirror"

var _ docmirror.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is a mock implementation of docmirror.ProfileStore.
type ProfileStore struct {
	ProfilesFn func() ([]*docmirror.Profile, error)
}

func (s *ProfileStore) Profiles() ([]*docmirror.Profile, error) {
	return s.ProfilesFn()
}
