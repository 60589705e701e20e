package campaigns

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Campaign
	seq  int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Campaign{}}
}

func (r *testRepo) Create(_ context.Context, c Campaign) (string, error) {
	r.seq++
	c.ID = fmt.Sprintf("c-%d", r.seq)
	r.byID[c.ID] = c
	return c.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Campaign, error) {
	c, ok := r.byID[id]
	if !ok {
		return Campaign{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) Update(_ context.Context, c Campaign) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) TogglePaused(_ context.Context, id string) (bool, error) {
	c, ok := r.byID[id]
	if !ok {
		return false, ErrNotFound
	}
	c.Paused = !c.Paused
	r.byID[id] = c
	return c.Paused, nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) List(_ context.Context, owner string) ([]Campaign, error) {
	out := make([]Campaign, 0)
	for _, c := range r.byID {
		if owner != "" && c.OwnerEmail != owner {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func TestService_Create_ConvertsAmountAndDate(t *testing.T) {
	svc := NewService(newTestRepo())

	c, err := svc.Create(context.Background(), "ana@example.com", CreateInput{
		PetName:   "Milo",
		MaxAmount: 19.99,
		LastDate:  "2026-12-31",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if c.TargetCents != 1999 {
		t.Fatalf("expected 1999 cents, got %d", c.TargetCents)
	}
	if c.LastDate == nil || c.LastDate.Format(dateLayout) != "2026-12-31" {
		t.Fatalf("unexpected last date %v", c.LastDate)
	}
	if c.Paused {
		t.Fatalf("new campaign must not be paused")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "ana@example.com", CreateInput{PetName: "Milo", LastDate: "31/12/2026"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad date, got %v", err)
	}
	if _, err := svc.Create(ctx, "ana@example.com", CreateInput{PetName: "Milo", MaxAmount: -5}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative amount, got %v", err)
	}
	if _, err := svc.Create(ctx, "ana@example.com", CreateInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without pet name, got %v", err)
	}
}

func TestService_TogglePaused(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	c, _ := svc.Create(ctx, "ana@example.com", CreateInput{PetName: "Milo"})

	paused, err := svc.TogglePaused(ctx, c.ID)
	if err != nil || !paused {
		t.Fatalf("expected paused=true, got %v err=%v", paused, err)
	}
	paused, err = svc.TogglePaused(ctx, c.ID)
	if err != nil || paused {
		t.Fatalf("expected paused=false, got %v err=%v", paused, err)
	}
	if _, err := svc.TogglePaused(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCampaign_AcceptsDonations(t *testing.T) {
	last := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	c := Campaign{LastDate: &last}

	if !c.AcceptsDonations(time.Date(2026, 6, 30, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("deadline day must still accept donations")
	}
	if c.AcceptsDonations(time.Date(2026, 7, 1, 0, 0, 1, 0, time.UTC)) {
		t.Fatalf("after deadline must not accept donations")
	}

	c.Paused = true
	if c.AcceptsDonations(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("paused campaign must not accept donations")
	}
}
