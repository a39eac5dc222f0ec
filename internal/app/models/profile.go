package models

import "booking-service/internal/pkg/dto/responses"

type Profile struct {
	ID      string  `bson:"_id"`
	Name    string  `bson:"name"`
	Email   string  `bson:"email"`
	Phone   string  `bson:"phone"`
	Image   string  `bson:"image"`
	Gender  string  `bson:"gender"`
	Dob     string  `bson:"dob"`
	Address Address `bson:"address"`
}

// Snapshot drops the id and anything not needed to render an appointment.
func (p Profile) Snapshot() UserSnapshot {
	return UserSnapshot{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Image:   p.Image,
		Gender:  p.Gender,
		Dob:     p.Dob,
		Address: p.Address,
	}
}

type UserSnapshot struct {
	Name    string  `bson:"name"`
	Email   string  `bson:"email"`
	Phone   string  `bson:"phone"`
	Image   string  `bson:"image"`
	Gender  string  `bson:"gender"`
	Dob     string  `bson:"dob"`
	Address Address `bson:"address"`
}

func (s UserSnapshot) ConvertIntoResponse() responses.UserSnapshot {
	return responses.UserSnapshot{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Image:   s.Image,
		Gender:  s.Gender,
		Dob:     s.Dob,
		Address: s.Address.ConvertIntoResponse(),
	}
}
