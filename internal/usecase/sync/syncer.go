package sync

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/repository"
)

const pushTimeout = 5 * time.Second

// Syncer reconciles the local snapshot with the family remote and pushes
// the merged result back. remote may be nil, in which case every operation
// is local-only.
type Syncer struct {
	local    repository.ProgressRepository
	remote   repository.RemoteStore
	familyID string
	logger   *logrus.Logger

	pushErrs chan error
}

// NewSyncer wires the syncer. The push error channel is buffered so
// fire-and-forget pushes stay non-blocking while failures remain
// observable to anyone who cares to listen.
func NewSyncer(local repository.ProgressRepository, remote repository.RemoteStore, familyID string, logger *logrus.Logger) *Syncer {
	return &Syncer{
		local:    local,
		remote:   remote,
		familyID: familyID,
		logger:   logger,
		pushErrs: make(chan error, 8),
	}
}

// Enabled reports whether a remote store is configured.
func (s *Syncer) Enabled() bool { return s.remote != nil }

// PushErrors exposes outcomes of asynchronous pushes; nil means success.
func (s *Syncer) PushErrors() <-chan error { return s.pushErrs }

// Sync fetches the remote snapshot, merges it with the given local one,
// persists the merge locally and pushes it back unconditionally (even an
// unchanged merge refreshes the remote row). A failed fetch degrades to
// local state; a failed push only logs.
func (s *Syncer) Sync(ctx context.Context, local entity.ProgressSnapshot) (entity.ProgressSnapshot, error) {
	if s.remote == nil {
		return local, nil
	}

	remote, err := s.remote.Fetch(ctx, s.familyID)
	if err != nil {
		s.logger.WithError(err).Warn("remote fetch failed, staying local")
		remote = nil
	}

	merged := Merge(local, remote)
	if err := s.local.Save(ctx, merged); err != nil {
		return entity.ProgressSnapshot{}, err
	}

	if err := s.remote.Push(ctx, s.familyID, merged); err != nil {
		s.logger.WithError(err).Warn("remote push failed")
	}
	return merged, nil
}

// PushAsync pushes the snapshot without blocking the caller. The outcome
// lands on PushErrors (dropped when nobody is draining) and in the log.
func (s *Syncer) PushAsync(snap entity.ProgressSnapshot) {
	if s.remote == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		err := s.remote.Push(ctx, s.familyID, snap)
		if err != nil {
			s.logger.WithError(err).Warn("background push failed")
		}
		select {
		case s.pushErrs <- err:
		default:
		}
	}()
}
