package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/backoffice/user-management-api/internal/core/domain"
)

// User-facing messages, carried over verbatim from the original API contract.
const (
	msgEmailTaken  = "El email ya se encuentra en uso"
	msgRoleUnknown = "El rol seleccionado no existe"
)

// structFieldNames maps Go struct fields to the JSON field names reported to
// clients.
var structFieldNames = map[string]string{
	"Name":     "name",
	"LastName": "last_name",
	"Email":    "email",
	"Password": "password",
	"Role":     "role",
}

// fieldMessages maps JSON field name and violated rule to the user-facing
// message. go-playground/validator stops at the first failing tag per field,
// so each field reports exactly one message, in tag-declaration order.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "El nombre es obligatorio",
		"max":      "El nombre no debe superar los 100 caracteres",
	},
	"last_name": {
		"max": "El apellido no debe superar los 100 caracteres",
	},
	"email": {
		"required": "El email es obligatorio",
		"email":    "El email debe ser un correo electrónico válido",
		"max":      "El email no debe superar los 100 caracteres",
	},
	"password": {
		"required": "La contraseña es obligatoria",
		"eqfield":  "Las contraseñas no coinciden",
		"min":      "La contraseña debe tener al menos 8 caracteres",
	},
	"role": {
		"required": "Debe elegir un rol",
	},
}

// validateInput runs the tag-declared rule set of the given input struct and
// collects one Spanish message per violated field. The rule set is fixed by
// the input type, so create and update shapes differ without any shared
// mutable rule state.
func validateInput(v *validator.Validate, in any) *domain.ValidationError {
	verr := domain.NewValidationError()
	err := v.Struct(in)
	if err == nil {
		return verr
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		verr.Add("general", "Error al procesar la solicitud")
		return verr
	}

	for _, fe := range ve {
		field, ok := structFieldNames[fe.StructField()]
		if !ok {
			field = fe.StructField()
		}
		if msg, ok := fieldMessages[field][fe.Tag()]; ok {
			verr.Add(field, msg)
			continue
		}
		verr.Add(field, "El campo "+field+" no es válido")
	}
	return verr
}
