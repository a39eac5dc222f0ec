package models

import "booking-service/internal/pkg/dto/responses"

type Address struct {
	Line1 string `bson:"line1" json:"line1"`
	Line2 string `bson:"line2" json:"line2"`
}

func (a Address) ConvertIntoResponse() responses.Address {
	return responses.Address{
		Line1: a.Line1,
		Line2: a.Line2,
	}
}

type Provider struct {
	ID           string     `bson:"_id"`
	Name         string     `bson:"name"`
	Email        string     `bson:"email,omitempty"`
	Image        string     `bson:"image"`
	Speciality   string     `bson:"speciality"`
	Degree       string     `bson:"degree"`
	Experience   string     `bson:"experience"`
	About        string     `bson:"about"`
	Address      Address    `bson:"address"`
	Fees         float64    `bson:"fees"`
	Available    bool       `bson:"available"`
	SlotsBooked  SlotLedger `bson:"slots_booked"`
	SlotsVersion int64      `bson:"slots_version"`
}

// Clone returns a copy whose ledger does not alias the receiver's.
func (p Provider) Clone() Provider {
	p.SlotsBooked = p.SlotsBooked.Clone()
	return p
}

// Summary is the immutable provider view stored with an appointment. It never
// carries the ledger.
func (p Provider) Summary() ProviderSummary {
	return ProviderSummary{
		Name:       p.Name,
		Image:      p.Image,
		Speciality: p.Speciality,
		Address:    p.Address,
		Fees:       p.Fees,
	}
}

type ProviderSummary struct {
	Name       string  `bson:"name"`
	Image      string  `bson:"image"`
	Speciality string  `bson:"speciality"`
	Address    Address `bson:"address"`
	Fees       float64 `bson:"fees"`
}

func (s ProviderSummary) ConvertIntoResponse() responses.ProviderSummary {
	return responses.ProviderSummary{
		Name:       s.Name,
		Image:      s.Image,
		Speciality: s.Speciality,
		Address:    s.Address.ConvertIntoResponse(),
		Fees:       s.Fees,
	}
}
