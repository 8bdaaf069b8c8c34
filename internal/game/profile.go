package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrUnknownGame    = errors.New("unknown game")
	ErrInvalidProfile = errors.New("invalid game profile")
)

// Profile describes one lottery shape: PickCount balls drawn from 1..MaxNumber.
type Profile struct {
	Name      string `yaml:"name" json:"name"`
	Title     string `yaml:"title" json:"title"`
	MaxNumber int    `yaml:"max_number" json:"max_number"`
	PickCount int    `yaml:"pick_count" json:"pick_count"`
	MinAC     int    `yaml:"min_ac" json:"min_ac"`
}

var (
	Lotto649 = Profile{Name: "lotto649", Title: "Lotto 6/49", MaxNumber: 49, PickCount: 6, MinAC: 7}
	Daily539 = Profile{Name: "daily539", Title: "Daily Cash 5/39", MaxNumber: 39, PickCount: 5, MinAC: 5}
)

// MaxAC is the largest AC value a k-ball combination can reach.
func MaxAC(k int) int {
	if k < 2 {
		return 0
	}
	return k*(k-1)/2 - (k - 1)
}

func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProfile)
	}
	if p.PickCount < 2 {
		return fmt.Errorf("%w: %s pick_count %d < 2", ErrInvalidProfile, p.Name, p.PickCount)
	}
	if p.MaxNumber < p.PickCount {
		return fmt.Errorf("%w: %s max_number %d < pick_count %d", ErrInvalidProfile, p.Name, p.MaxNumber, p.PickCount)
	}
	if p.MinAC < 0 || p.MinAC > MaxAC(p.PickCount) {
		return fmt.Errorf("%w: %s min_ac %d not in 0..%d", ErrInvalidProfile, p.Name, p.MinAC, MaxAC(p.PickCount))
	}
	return nil
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (%d/%d)", p.Name, p.PickCount, p.MaxNumber)
}

type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry returns a registry seeded with the built-in profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile)}
	r.profiles[Lotto649.Name] = Lotto649
	r.profiles[Daily539.Name] = Daily539
	return r
}

// Register adds or replaces a profile. Zero fields inherit from an existing
// profile with the same name.
func (r *Registry) Register(p Profile) error {
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))

	r.mu.Lock()
	defer r.mu.Unlock()

	if base, ok := r.profiles[p.Name]; ok {
		if p.Title == "" {
			p.Title = base.Title
		}
		if p.MaxNumber == 0 {
			p.MaxNumber = base.MaxNumber
		}
		if p.PickCount == 0 {
			p.PickCount = base.PickCount
		}
		if p.MinAC == 0 {
			p.MinAC = base.MinAC
		}
	}
	if p.Title == "" {
		p.Title = p.Name
	}
	if err := p.Validate(); err != nil {
		return err
	}
	r.profiles[p.Name] = p
	return nil
}

func (r *Registry) Get(name string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownGame, name)
	}
	return p, nil
}

// List returns every profile sorted by name.
func (r *Registry) List() []Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
