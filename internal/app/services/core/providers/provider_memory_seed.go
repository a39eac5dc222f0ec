package providers

import (
	"booking-service/internal/app/models"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// MemorySeed is the JSON fixture a MemoryDirectory can start from. Field names
// follow the provider and user documents.
type MemorySeed struct {
	Providers []seedProvider `json:"providers"`
	Users     []seedProfile  `json:"users"`
}

type seedAddress struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type seedProvider struct {
	ID          string              `json:"_id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Image       string              `json:"image"`
	Speciality  string              `json:"speciality"`
	Degree      string              `json:"degree"`
	Experience  string              `json:"experience"`
	About       string              `json:"about"`
	Address     seedAddress         `json:"address"`
	Fees        float64             `json:"fees"`
	Available   bool                `json:"available"`
	SlotsBooked map[string][]string `json:"slots_booked"`
}

type seedProfile struct {
	ID      string      `json:"_id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Image   string      `json:"image"`
	Gender  string      `json:"gender"`
	Dob     string      `json:"dob"`
	Address seedAddress `json:"address"`
}

// LoadSeed decodes a MemorySeed from r and stores every entry. Nothing is
// stored when the fixture is invalid.
func (d *MemoryDirectory) LoadSeed(r io.Reader) (providerCount, profileCount int, err error) {
	var seed MemorySeed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return 0, 0, fmt.Errorf("decode memory seed: %w", err)
	}

	for i, provider := range seed.Providers {
		if provider.ID == "" {
			return 0, 0, fmt.Errorf("memory seed provider #%d: %w", i, errMissingSeedID)
		}
	}
	for i, profile := range seed.Users {
		if profile.ID == "" {
			return 0, 0, fmt.Errorf("memory seed user #%d: %w", i, errMissingSeedID)
		}
	}

	for _, provider := range seed.Providers {
		d.PutProvider(models.Provider{
			ID:          provider.ID,
			Name:        provider.Name,
			Email:       provider.Email,
			Image:       provider.Image,
			Speciality:  provider.Speciality,
			Degree:      provider.Degree,
			Experience:  provider.Experience,
			About:       provider.About,
			Address:     models.Address(provider.Address),
			Fees:        provider.Fees,
			Available:   provider.Available,
			SlotsBooked: models.SlotLedger(provider.SlotsBooked),
		})
	}
	for _, profile := range seed.Users {
		d.PutProfile(models.Profile{
			ID:      profile.ID,
			Name:    profile.Name,
			Email:   profile.Email,
			Phone:   profile.Phone,
			Image:   profile.Image,
			Gender:  profile.Gender,
			Dob:     profile.Dob,
			Address: models.Address(profile.Address),
		})
	}
	return len(seed.Providers), len(seed.Users), nil
}

// LoadSeedFile is LoadSeed over the file at path.
func (d *MemoryDirectory) LoadSeedFile(path string) (providerCount, profileCount int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open memory seed: %w", err)
	}
	defer file.Close()
	return d.LoadSeed(file)
}

var errMissingSeedID = errors.New("missing _id")
