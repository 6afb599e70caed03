package entity

import (
	"time"
)

// Birthplace describes where a user was born. It has no identity of its own
// and is stored embedded in the user document.
type Birthplace struct {
	Village string `json:"village,omitempty"`
	Union   string `json:"union,omitempty"`
	WardNo  string `json:"ward_no,omitempty"`
	Upazila string `json:"upazila,omitempty"`
	Zila    string `json:"zila,omitempty"`
}

// PermanentAddress is the user's permanent address, embedded like Birthplace.
type PermanentAddress struct {
	Village string `json:"village,omitempty"`
	Union   string `json:"union,omitempty"`
	WardNo  string `json:"ward_no,omitempty"`
	Upazila string `json:"upazila,omitempty"`
}

// User is the aggregate root for the auth domain.
// Password holds a bcrypt hash and must never reach a client; every outward
// representation goes through PublicView.
type User struct {
	ID           string
	NameEN       string
	NIDNumber    string
	MobileNumber string
	Password     string
	Balance      float64

	NameBN                string
	DateOfBirth           string
	EmergencyMobileNumber string
	BloodGroup            string
	FatherName            string
	MotherName            string
	SchoolOrCollegeName   string
	CurrentProfession     string

	Birthplace       *Birthplace
	PermanentAddress *PermanentAddress

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserView is the client-facing representation of a User. It carries no
// password field at all, so no serialization path can leak the hash.
type UserView struct {
	ID           string  `json:"id"`
	NameEN       string  `json:"name_en"`
	NIDNumber    string  `json:"nid_number"`
	MobileNumber string  `json:"mobile_number"`
	Balance      float64 `json:"balance"`

	NameBN                string `json:"name_bn,omitempty"`
	DateOfBirth           string `json:"date_of_birth,omitempty"`
	EmergencyMobileNumber string `json:"emergency_mobile_number,omitempty"`
	BloodGroup            string `json:"blood_group,omitempty"`
	FatherName            string `json:"father_name,omitempty"`
	MotherName            string `json:"mother_name,omitempty"`
	SchoolOrCollegeName   string `json:"school_or_college_name,omitempty"`
	CurrentProfession     string `json:"current_profession,omitempty"`

	Birthplace       *Birthplace       `json:"birthplace,omitempty"`
	PermanentAddress *PermanentAddress `json:"permanent_address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicView converts a User into its password-free client representation.
func (u *User) PublicView() *UserView {
	return &UserView{
		ID:                    u.ID,
		NameEN:                u.NameEN,
		NIDNumber:             u.NIDNumber,
		MobileNumber:          u.MobileNumber,
		Balance:               u.Balance,
		NameBN:                u.NameBN,
		DateOfBirth:           u.DateOfBirth,
		EmergencyMobileNumber: u.EmergencyMobileNumber,
		BloodGroup:            u.BloodGroup,
		FatherName:            u.FatherName,
		MotherName:            u.MotherName,
		SchoolOrCollegeName:   u.SchoolOrCollegeName,
		CurrentProfession:     u.CurrentProfession,
		Birthplace:            u.Birthplace,
		PermanentAddress:      u.PermanentAddress,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}
