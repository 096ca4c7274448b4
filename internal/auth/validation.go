package auth

import (
	"regexp"
	"strings"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRegex = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)
	cpfRegex   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
)

const MinPasswordLength = 6

// Registration is the sign-up form.
type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CPF             string `json:"cpf"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate reports every invalid field at once.
func (r Registration) Validate() error {
	errs := models.FieldErrors{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "Nome é obrigatório"
	}
	if !ValidateEmail(r.Email) {
		errs["email"] = "Email inválido"
	}
	if !phoneRegex.MatchString(r.Phone) {
		errs["phone"] = "Formato: (11) 99999-9999"
	}
	if !ValidateCPF(r.CPF) {
		errs["cpf"] = "Formato: 000.000.000-00"
	}
	if len(r.Password) < MinPasswordLength {
		errs["password"] = "Senha deve ter pelo menos 6 caracteres"
	}
	if r.ConfirmPassword != r.Password {
		errs["confirmPassword"] = "Senhas não coincidem"
	}
	return errs.OrNil()
}

// ValidateEmail checks if an email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email) && len(email) < 255
}

// ValidateCPF checks the 000.000.000-00 layout only.
func ValidateCPF(cpf string) bool {
	return cpfRegex.MatchString(cpf)
}
