// Package persistence keeps the player's combo records between runs.
package persistence

import (
	"encoding/json"
	"log"
	"time"

	"github.com/automoto/fruitfight/combo"
	"github.com/google/uuid"
	"github.com/quasilyte/gdata"
)

const (
	profileKey = "profile"
	// maxRuns bounds the run history kept in the profile.
	maxRuns = 20
)

// ItemStore is the key/value surface of a gdata.Manager.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// RunRecord is one finished run.
type RunRecord struct {
	ID          string    `json:"id"`
	MaxCombo    int       `json:"maxCombo"`
	TotalPoints int       `json:"totalPoints"`
	Duration    float64   `json:"duration"`
	EndedAt     time.Time `json:"endedAt"`
}

// Profile is what survives between runs.
type Profile struct {
	BestCombo      int         `json:"bestCombo"`
	LifetimePoints int         `json:"lifetimePoints"`
	Runs           []RunRecord `json:"runs"`
}

// Record folds run into the profile and reports whether it set a new best
// combo. Only the latest runs are kept.
func (p *Profile) Record(run RunRecord) bool {
	best := run.MaxCombo > p.BestCombo
	if best {
		p.BestCombo = run.MaxCombo
	}
	p.LifetimePoints += run.TotalPoints
	p.Runs = append(p.Runs, run)
	if len(p.Runs) > maxRuns {
		p.Runs = p.Runs[len(p.Runs)-maxRuns:]
	}
	return best
}

type Store struct {
	items ItemStore
}

// Open initializes gdata storage for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[persistence] Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return NewStore(m), nil
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// LoadProfile reads the saved profile. A missing profile is an empty one.
func (s *Store) LoadProfile() (*Profile, error) {
	data, err := s.items.LoadItem(profileKey)
	if err != nil {
		log.Printf("[persistence] Warning: Could not load profile: %v", err)
		return nil, err
	}
	if len(data) == 0 {
		return &Profile{}, nil
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("[persistence] Warning: Could not parse saved profile: %v", err)
		return nil, err
	}
	return &p, nil
}

// SaveProfile writes p to disk.
func (s *Store) SaveProfile(p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("[persistence] Warning: Could not serialize profile: %v", err)
		return err
	}
	if err := s.items.SaveItem(profileKey, data); err != nil {
		log.Printf("[persistence] Warning: Could not save profile: %v", err)
		return err
	}
	return nil
}

// RecordRun adds a finished run to the saved profile and writes it back.
func (s *Store) RecordRun(id uuid.UUID, summary combo.Summary, duration float64, endedAt time.Time) (*Profile, error) {
	p, err := s.LoadProfile()
	if err != nil {
		return nil, err
	}
	if p.Record(RunRecord{
		ID:          id.String(),
		MaxCombo:    summary.MaxCombo,
		TotalPoints: summary.TotalPoints,
		Duration:    duration,
		EndedAt:     endedAt,
	}) {
		log.Printf("[persistence] New best combo: %d", p.BestCombo)
	}
	if err := s.SaveProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Clear removes the saved profile.
func (s *Store) Clear() error {
	if err := s.items.SaveItem(profileKey, nil); err != nil {
		log.Printf("[persistence] Warning: Could not clear profile: %v", err)
		return err
	}
	return nil
}
