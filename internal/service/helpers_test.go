package service_test

import (
	"context"
	"testing"
	"time"

	bclock "github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/repository/memory"
	"github.com/tatyana-ilieva/lev-holdings/internal/service"
	"github.com/tatyana-ilieva/lev-holdings/internal/service/mocks"
)

var start = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// fixedRandom returns n (clamped below the bound) and f.
type fixedRandom struct {
	n int
	f float64
}

func (r fixedRandom) IntN(bound int) int {
	if r.n >= bound {
		return bound - 1
	}
	return r.n
}

func (r fixedRandom) Float64() float64 { return r.f }

// sequenceRandom walks through ints so generated identifiers differ between calls.
type sequenceRandom struct {
	next int
}

func (r *sequenceRandom) IntN(bound int) int {
	r.next++
	return r.next % bound
}

func (r *sequenceRandom) Float64() float64 { return 0.5 }

var defaultTiming = service.Timing{ViewCompleteAfter: 10 * time.Second, AutoCompleteAfter: 15 * time.Second}

// casStore reports every conditional write so tests can wait for timers,
// which the mock clock runs on their own goroutine.
type casStore struct {
	*memory.Store
	writes chan casWrite
}

type casWrite struct {
	walletID   string
	generation uint64
	saved      bool
}

func newCASStore() *casStore {
	return &casStore{Store: memory.New(), writes: make(chan casWrite, 64)}
}

func (s *casStore) SaveIfGeneration(ctx context.Context, record *models.VerificationRecord, generation uint64) (bool, error) {
	saved, err := s.Store.SaveIfGeneration(ctx, record, generation)
	s.writes <- casWrite{walletID: record.WalletID, generation: generation, saved: saved}
	return saved, err
}

// awaitCAS returns the next conditional write or fails the test.
func (s *casStore) awaitCAS(t *testing.T) casWrite {
	t.Helper()
	select {
	case w := <-s.writes:
		return w
	case <-time.After(2 * time.Second):
		t.Fatal("no conditional write happened")
		return casWrite{}
	}
}

// assertNoCAS fails if a conditional write happens shortly.
func (s *casStore) assertNoCAS(t *testing.T) {
	t.Helper()
	select {
	case w := <-s.writes:
		t.Fatalf("unexpected conditional write %+v", w)
	case <-time.After(50 * time.Millisecond):
	}
}

type statusFixture struct {
	svc       *service.StatusService
	store     *casStore
	clock     *bclock.Mock
	publisher *mocks.MockPublisher
}

func newStatusFixture(t *testing.T) statusFixture {
	store := newCASStore()
	clk := clock.NewMock(start)
	pub := mocks.NewMockPublisher(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return statusFixture{
		svc:       service.NewStatusService(store, pub, clk, fixedRandom{n: 17}, defaultTiming),
		store:     store,
		clock:     clk,
		publisher: pub,
	}
}
