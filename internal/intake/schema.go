// internal/intake/schema.go
package intake

import "nextcard-intake/internal/models"

const (
	fieldApplicationType = "applicationType"
	fieldCardType        = "cardType"

	jobApplicationType     = "job_application"
	jobApplicationCardType = "Vaga de Emprego" // legacy frontend discriminator
)

// RequiredField pairs a form field with its fixed rejection message.
type RequiredField struct {
	Name    string
	Message string
}

var cardRequiredFields = []RequiredField{
	{"firstName", "Nome é obrigatório"},
	{"lastName", "Sobrenome é obrigatório"},
	{"email", "Email é obrigatório"},
	{"phone", "Telefone é obrigatório"},
	{"idNumber", "Número de identificação é obrigatório"},
	{"birthdate", "Data de nascimento é obrigatória"},
	{"country", "País é obrigatório"},
	{"addressLine1", "Endereço é obrigatório"},
	{"city", "Cidade é obrigatória"},
	{"state", "Estado é obrigatório"},
	{"postalCode", "CEP é obrigatório"},
	{"currency", "Moeda é obrigatória"},
	{"income", "Renda anual é obrigatória"},
	{"occupation", "Ocupação é obrigatória"},
	{"employmentStatus", "Situação de emprego é obrigatória"},
	{"cardType", "Tipo de cartão é obrigatório"},
}

var jobRequiredFields = []RequiredField{
	{"firstName", "Nome é obrigatório"},
	{"email", "Email é obrigatório"},
	{"phone", "Telefone é obrigatório"},
	{"country", "País é obrigatório"},
	{"employmentStatus", "Situação de emprego é obrigatória"},
}

// jobOptionalDefaults backfills fields a job candidate is not asked for.
// Applied before the required check, so a defaulted field never fails it.
var jobOptionalDefaults = []struct {
	Name    string
	Default string
}{
	{"lastName", "N/A"},
	{"addressLine1", "Não informado - Candidatura Online"},
	{"city", "Não informado"},
	{"state", "Não informado"},
	{"postalCode", "00000-000"},
	{"income", "Não informado"},
	{"employmentStatus", "candidate"},
}

// KindOf resolves the schema kind from the discriminator field, accepting
// the legacy cardType spelling as well.
func KindOf(form map[string]string) models.SchemaKind {
	if form[fieldApplicationType] == jobApplicationType || form[fieldCardType] == jobApplicationCardType {
		return models.KindJobApplication
	}
	return models.KindCardApplication
}

// RequiredFields returns the ordered required set for the kind. The order is
// part of the contract: validation reports the first missing field.
func RequiredFields(kind models.SchemaKind) []RequiredField {
	if kind == models.KindJobApplication {
		return jobRequiredFields
	}
	return cardRequiredFields
}

// ApplyDefaults returns a copy of the form with the job-application optional
// defaults filled in. The input map is never mutated; every downstream stage
// works on the returned copy.
func ApplyDefaults(kind models.SchemaKind, form map[string]string) map[string]string {
	out := make(map[string]string, len(form))
	for k, v := range form {
		out[k] = v
	}

	if kind != models.KindJobApplication {
		return out
	}

	for _, opt := range jobOptionalDefaults {
		if out[opt.Name] == "" {
			out[opt.Name] = opt.Default
		}
	}
	return out
}

// FirstMissing returns the first required field absent or empty in the form,
// or nil when all are present.
func FirstMissing(form map[string]string, required []RequiredField) *RequiredField {
	for i := range required {
		if form[required[i].Name] == "" {
			return &required[i]
		}
	}
	return nil
}

// BuildCard populates the typed card record from the normalized form.
func BuildCard(form map[string]string) *models.CardApplication {
	return &models.CardApplication{
		FirstName:        form["firstName"],
		LastName:         form["lastName"],
		Email:            form["email"],
		Phone:            form["phone"],
		IDNumber:         form["idNumber"],
		Birthdate:        form["birthdate"],
		Country:          form["country"],
		AddressLine1:     form["addressLine1"],
		AddressLine2:     form["addressLine2"],
		City:             form["city"],
		State:            form["state"],
		PostalCode:       form["postalCode"],
		Currency:         form["currency"],
		Income:           form["income"],
		Occupation:       form["occupation"],
		EmploymentStatus: form["employmentStatus"],
		CardType:         form["cardType"],
	}
}

// BuildJob populates the typed job record from the normalized form.
func BuildJob(form map[string]string) *models.JobApplication {
	return &models.JobApplication{
		FirstName:        form["firstName"],
		LastName:         form["lastName"],
		Email:            form["email"],
		Phone:            form["phone"],
		Cellphone:        form["cellphone"],
		Country:          form["country"],
		Nationality:      form["nationality"],
		Birthdate:        form["birthdate"],
		PositionInterest: form["positionInterest"],
		EmploymentStatus: form["employmentStatus"],
		Occupation:       form["occupation"],
		Income:           form["income"],
		Institutions:     form["institutions"],
		Experience:       form["experience"],
		Education:        form["education"],
		Languages:        form["languages"],
		Skills:           form["skills"],
		CoverLetter:      form["coverLetter"],
	}
}
