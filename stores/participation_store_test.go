package stores

import (
	"sync"
	"testing"
	"time"

	"github.com/goalsync/goalsync/models"
)

func TestParticipationStoreJoinLeave(t *testing.T) {
	s := NewParticipationStore()
	now := time.Now()

	if !s.Join("c1", "u1", now) {
		t.Fatal("first join refused")
	}
	if s.Join("c1", "u1", now) {
		t.Error("duplicate join accepted")
	}
	if s.CountByChallenge("c1") != 1 {
		t.Errorf("count = %d, want 1", s.CountByChallenge("c1"))
	}

	if !s.Leave("c1", "u1") {
		t.Error("leave refused for joined pair")
	}
	if s.Leave("c1", "u1") {
		t.Error("leave accepted for absent pair")
	}
	if _, ok := s.Get("c1", "u1"); ok {
		t.Error("record survived leave")
	}
}

func TestParticipationStoreJoinOrder(t *testing.T) {
	s := NewParticipationStore()
	now := time.Now()
	for _, u := range []string{"a", "b", "c"} {
		s.Join("c1", u, now)
	}
	s.Leave("c1", "b")
	s.Join("c1", "b", now)

	parts := s.ByChallenge("c1")
	got := make([]string, 0, len(parts))
	for _, p := range parts {
		got = append(got, p.UserID)
	}
	want := []string{"a", "c", "b"} // rejoin goes to the back
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestParticipationStoreConcurrentCheckins(t *testing.T) {
	s := NewParticipationStore()
	s.Join("c1", "u1", time.Now())

	const workers = 16
	const perWorker = 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Update("c1", "u1", func(p *models.ChallengeParticipation) {
					p.Checkins++
				})
			}
		}()
	}
	wg.Wait()

	p, _ := s.Get("c1", "u1")
	if p.Checkins != workers*perWorker {
		t.Errorf("checkins = %d, want %d (lost updates)", p.Checkins, workers*perWorker)
	}
}

func TestParticipationStoreCompletedByUser(t *testing.T) {
	s := NewParticipationStore()
	now := time.Now()
	s.Join("c1", "u1", now)
	s.Join("c2", "u1", now)
	s.Update("c1", "u1", func(p *models.ChallengeParticipation) { p.Completed = true })

	if got := s.CompletedByUser("u1"); got != 1 {
		t.Errorf("completed = %d, want 1", got)
	}
	if got := s.Count(); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}
