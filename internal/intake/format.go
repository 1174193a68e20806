// internal/intake/format.go
// Message formatting for the Telegram relay. Field values are interpolated
// into the Markdown template verbatim, exactly as the destination channel
// operators expect them; a submitter can therefore inject Markdown markup
// into the summary message. Known and accepted: the chat is private, the
// message is informational and nothing parses it downstream.
package intake

import (
	"fmt"

	"nextcard-intake/internal/models"
)

const (
	notInformed  = "Não informado"
	notInformedF = "Não informada"
)

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// FormatCard renders the NextCard summary template.
func FormatCard(app *models.CardApplication, photoCount int) string {
	return fmt.Sprintf(`📋 *Nova solicitação de NextCard* 📋

*Informações Pessoais:*
• Nome: %s %s
• Email: %s
• Telefone: %s
• ID/Passaporte: %s
• Data de Nascimento: %s

*Informações de Endereço:*
• País: %s
• Endereço: %s
• Endereço 2: %s
• Cidade: %s
• Estado: %s
• Código Postal: %s

*Informações Financeiras:*
• Moeda: %s
• Renda Anual: %s
• Ocupação: %s
• Situação de Emprego: %s
• Tipo de Cartão: %s

*Fotos anexadas:* %d/3`,
		app.FirstName, app.LastName,
		app.Email,
		app.Phone,
		app.IDNumber,
		app.Birthdate,
		app.Country,
		app.AddressLine1,
		app.AddressLine2,
		app.City,
		app.State,
		app.PostalCode,
		app.Currency,
		app.Income,
		app.Occupation,
		app.EmploymentStatus,
		app.CardType,
		photoCount,
	)
}

// FormatJob renders the job candidacy summary template. Optional fields fall
// back to the fixed placeholder instead of being omitted.
func FormatJob(app *models.JobApplication, photoCount int) string {
	return fmt.Sprintf(`📋 *Nova Candidatura Recebida* 📋

*Informações Pessoais:*
• Nome: %s %s
• Email: %s
• Telefone: %s
• Celular: %s
• País: %s
• Nacionalidade: %s
• Data Nascimento: %s

*Informações Profissionais:*
• Área de Interesse: %s
• Situação de Emprego: %s
• Profissão: %s
• Salário Atual: %s
• Instituições: %s
• Experiência: %s
• Escolaridade: %s
• Idiomas: %s
• Habilidades: %s

*Carta de Apresentação:*
%s

*Fotos anexadas:* %d/3`,
		app.FirstName, app.LastName,
		app.Email,
		app.Phone,
		orPlaceholder(app.Cellphone, notInformed),
		app.Country,
		orPlaceholder(app.Nationality, notInformed),
		orPlaceholder(app.Birthdate, notInformed),
		orPlaceholder(app.PositionInterest, notInformed),
		orPlaceholder(app.EmploymentStatus, notInformed),
		orPlaceholder(app.Occupation, notInformed),
		orPlaceholder(app.Income, notInformed),
		orPlaceholder(app.Institutions, notInformed),
		orPlaceholder(app.Experience, notInformed),
		orPlaceholder(app.Education, notInformed),
		orPlaceholder(app.Languages, notInformed),
		orPlaceholder(app.Skills, notInformed),
		orPlaceholder(app.CoverLetter, notInformedF),
		photoCount,
	)
}
