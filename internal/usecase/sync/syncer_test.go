package sync

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

type fakeLocalRepo struct {
	stored *entity.ProgressSnapshot
}

func (r *fakeLocalRepo) Load(ctx context.Context) (*entity.ProgressSnapshot, error) {
	if r.stored == nil {
		return nil, nil
	}
	snap := r.stored.Clone()
	return &snap, nil
}

func (r *fakeLocalRepo) Save(ctx context.Context, snap entity.ProgressSnapshot) error {
	clone := snap.Clone()
	r.stored = &clone
	return nil
}

func (r *fakeLocalRepo) Reset(ctx context.Context) error {
	r.stored = nil
	return nil
}

type fakeRemoteStore struct {
	snap     *entity.ProgressSnapshot
	fetchErr error
	pushErr  error
	pushes   int
}

func (r *fakeRemoteStore) Fetch(ctx context.Context, familyID string) (*entity.ProgressSnapshot, error) {
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	if r.snap == nil {
		return nil, nil
	}
	snap := r.snap.Clone()
	return &snap, nil
}

func (r *fakeRemoteStore) Push(ctx context.Context, familyID string, snap entity.ProgressSnapshot) error {
	r.pushes++
	if r.pushErr != nil {
		return r.pushErr
	}
	clone := snap.Clone()
	r.snap = &clone
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSyncMergesAndPushes(t *testing.T) {
	local := &fakeLocalRepo{}
	remoteSnap := snapshotFixture()
	remoteSnap.Sakura.TotalBlooms = 40
	remote := &fakeRemoteStore{snap: &remoteSnap}
	s := NewSyncer(local, remote, "fam", quietLogger())

	merged, err := s.Sync(context.Background(), snapshotFixture())
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}

	if merged.Sakura.TotalBlooms != 40 {
		t.Errorf("expected the remote sakura to win, got %+v", merged.Sakura)
	}
	if local.stored == nil || local.stored.Sakura.TotalBlooms != 40 {
		t.Error("expected the merge to be persisted locally")
	}
	if remote.pushes != 1 {
		t.Errorf("expected one push, got %d", remote.pushes)
	}
}

func TestSyncDegradesOnFetchFailure(t *testing.T) {
	local := &fakeLocalRepo{}
	remote := &fakeRemoteStore{fetchErr: errors.New("network down")}
	s := NewSyncer(local, remote, "fam", quietLogger())

	snap := snapshotFixture()
	merged, err := s.Sync(context.Background(), snap)
	if err != nil {
		t.Fatalf("expected a degraded sync, got error: %v", err)
	}
	if merged.Sakura != snap.Sakura {
		t.Errorf("expected local state to survive a fetch failure, got %+v", merged.Sakura)
	}
	if local.stored == nil {
		t.Error("expected the local snapshot to still be saved")
	}
}

func TestSyncToleratesPushFailure(t *testing.T) {
	local := &fakeLocalRepo{}
	remote := &fakeRemoteStore{pushErr: errors.New("write refused")}
	s := NewSyncer(local, remote, "fam", quietLogger())

	if _, err := s.Sync(context.Background(), snapshotFixture()); err != nil {
		t.Fatalf("expected a push failure to only log, got error: %v", err)
	}
	if local.stored == nil {
		t.Error("expected the local save to happen before the push")
	}
}

func TestSyncWithoutRemoteIsLocalOnly(t *testing.T) {
	local := &fakeLocalRepo{}
	s := NewSyncer(local, nil, "fam", quietLogger())

	if s.Enabled() {
		t.Error("expected Enabled to be false without a remote")
	}

	snap := snapshotFixture()
	merged, err := s.Sync(context.Background(), snap)
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if merged.Sakura != snap.Sakura {
		t.Errorf("expected the local snapshot unchanged, got %+v", merged.Sakura)
	}
}

func TestPushAsyncReportsOutcome(t *testing.T) {
	local := &fakeLocalRepo{}
	remote := &fakeRemoteStore{}
	s := NewSyncer(local, remote, "fam", quietLogger())

	s.PushAsync(snapshotFixture())

	if err := <-s.PushErrors(); err != nil {
		t.Fatalf("expected a successful push, got %v", err)
	}
	if remote.pushes != 1 {
		t.Errorf("expected one push, got %d", remote.pushes)
	}
}

func TestPushAsyncWithoutRemoteIsNoOp(t *testing.T) {
	s := NewSyncer(&fakeLocalRepo{}, nil, "fam", quietLogger())

	s.PushAsync(snapshotFixture())

	select {
	case err := <-s.PushErrors():
		t.Fatalf("unexpected push outcome %v", err)
	default:
	}
}
