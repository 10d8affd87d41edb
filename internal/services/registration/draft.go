package registration

import (
	"slices"

	"preptogether/internal/domain"
)

// Draft is the in-progress registration. The zero value is an empty draft.
type Draft struct {
	username     string
	password     string
	email        string
	role         domain.Role
	profession   domain.Profession
	technologies []string
}

// Username returns the entered username.
func (d Draft) Username() string { return d.username }

// Password returns the entered password.
func (d Draft) Password() string { return d.password }

// Email returns the entered e-mail address.
func (d Draft) Email() string { return d.email }

// Role returns the selected role.
func (d Draft) Role() domain.Role { return d.role }

// Profession returns the selected profession.
func (d Draft) Profession() domain.Profession { return d.profession }

// Technologies returns the selected technologies in selection order.
func (d Draft) Technologies() []string { return slices.Clone(d.technologies) }

// Request builds the /register payload.
func (d Draft) Request() domain.RegistrationRequest {
	techs := d.Technologies()
	if techs == nil {
		techs = []string{}
	}
	return domain.RegistrationRequest{
		Username:     d.username,
		Password:     d.password,
		Email:        d.email,
		Role:         d.role,
		Profession:   d.profession,
		Technologies: techs,
	}
}

func (d Draft) clone() Draft {
	d.technologies = slices.Clone(d.technologies)
	return d
}
