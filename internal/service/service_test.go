package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"

	"bingo_backend/internal/domain"
	"bingo_backend/internal/logger"
)

func TestMain(m *testing.M) {
	logger.InitWriter(io.Discard, "error", false)
	os.Exit(m.Run())
}

// localAuthority reaches a ValidationService in-process with the same
// outcomes the HTTP handlers produce.
type localAuthority struct {
	v *ValidationService
}

func (a localAuthority) RegisterCard(ctx context.Context, playerID string, numbers []int) error {
	a.v.RegisterCard(ctx, playerID, numbers)
	return nil
}

func (a localAuthority) ValidateNumber(ctx context.Context, playerID string, number int) (bool, error) {
	return a.v.ValidateNumber(ctx, playerID, number) == nil, nil
}

func (a localAuthority) ValidateBingo(ctx context.Context, playerID string, drawn []int) (bool, error) {
	bingo, err := a.v.ValidateBingo(ctx, playerID, drawn)
	return err == nil && bingo, nil
}

func (a localAuthority) GetCard(ctx context.Context, playerID string) ([]int, error) {
	nums, err := a.v.GetCard(ctx, playerID)
	if err != nil {
		return []int{}, nil
	}
	return nums, nil
}

// downAuthority fails every call like an unreachable validation authority.
type downAuthority struct{}

func (downAuthority) RegisterCard(context.Context, string, []int) error {
	return fmt.Errorf("%w: connection refused", domain.ErrRemoteUnavailable)
}

func (downAuthority) ValidateNumber(context.Context, string, int) (bool, error) {
	return false, fmt.Errorf("%w: connection refused", domain.ErrRemoteUnavailable)
}

func (downAuthority) ValidateBingo(context.Context, string, []int) (bool, error) {
	return false, fmt.Errorf("%w: connection refused", domain.ErrRemoteUnavailable)
}

func (downAuthority) GetCard(context.Context, string) ([]int, error) {
	return nil, fmt.Errorf("%w: connection refused", domain.ErrRemoteUnavailable)
}

// recorder counts observer events by name.
type recorder struct {
	NopObserver

	mu     sync.Mutex
	events map[string]int
}

func newRecorder() *recorder {
	return &recorder{events: make(map[string]int)}
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	r.events[name]++
	r.mu.Unlock()
}

func (r *recorder) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[name]
}

func (r *recorder) GameCreated(context.Context, domain.GameSnapshot) { r.add("created") }

func (r *recorder) PlayerRegistered(_ context.Context, _, _ string, forwarded bool) {
	if forwarded {
		r.add("registered")
	} else {
		r.add("registered_unforwarded")
	}
}

func (r *recorder) NumberDrawn(context.Context, string, int, int) { r.add("drawn") }

func (r *recorder) BingoChecked(_ context.Context, _, _ string, bingo bool) {
	if bingo {
		r.add("bingo")
	}
}
