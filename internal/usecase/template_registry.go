package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"text/template"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"
)

// statusEventKeys is the fixed status -> event key map. The initial
// documents-request message sent on acceptance is not here: it resolves by
// the request motive (DocumentsEventKey).
var statusEventKeys = map[entities.RequestStatus]string{
	entities.StatusAceito:                 entities.EventKeyAprovacao,
	entities.StatusPago:                   entities.EventKeyPagamento,
	entities.StatusCancelado:              entities.EventKeyCancelamento,
	entities.StatusProntoPagamento:        entities.EventKeyProntoPagamento,
	entities.StatusAguardandoDocumentacao: entities.EventKeyAguardandoDocs,
}

// defaultTemplates are the built-in message bodies, overridable per name via
// the notification config repository.
var defaultTemplates = map[string]string{
	entities.EventKeyAprovacao: "Prezado(a) {{.Name}},\n\n" +
		"Sua solicitação de auxílio ({{.Motive}}) foi aprovada no valor de R$ {{.Value}}.\n" +
		"Curso: {{.Course}}\nOrientador(a): {{.Advisor}}\n\nData: {{.Date}}",
	entities.EventKeyPagamento: "Prezado(a) {{.Name}},\n\n" +
		"O pagamento do seu auxílio no valor de R$ {{.Value}} foi efetuado.\n\nData: {{.Date}}",
	entities.EventKeyCancelamento: "Prezado(a) {{.Name}},\n\n" +
		"Sua solicitação de auxílio ({{.Motive}}) foi cancelada.\n\nData: {{.Date}}",
	entities.EventKeyProntoPagamento: "Prezado(a) {{.Name}},\n\n" +
		"Sua solicitação de auxílio ({{.Motive}}) está pronta para pagamento no valor de R$ {{.Value}}.\n\nData: {{.Date}}",
	entities.EventKeyConfirmacao: "Prezado(a) {{.Name}},\n\n" +
		"Recebemos sua solicitação de auxílio ({{.Motive}}) no valor de R$ {{.Value}}.\n\nData: {{.Date}}",
	entities.EventKeyAguardandoDocs: "Prezado(a) {{.Name}},\n\n" +
		"Sua solicitação de auxílio ({{.Motive}}) segue aguardando documentação. " +
		"Envie os documentos pendentes à secretaria.\n\nData: {{.Date}}",
	entities.MotiveTrabalhoCampo: "Prezado(a) {{.Name}},\n\n" +
		"Para prosseguir com o auxílio de trabalho de campo, envie o plano de atividades " +
		"assinado pelo(a) orientador(a) {{.Advisor}}.\n\nData: {{.Date}}",
	entities.MotiveParticipacaoEventos: "Prezado(a) {{.Name}},\n\n" +
		"Para prosseguir com o auxílio de participação em eventos, envie o comprovante de " +
		"aceite do trabalho e o programa do evento.\n\nData: {{.Date}}",
	entities.MotiveVisitaTecnica: "Prezado(a) {{.Name}},\n\n" +
		"Para prosseguir com o auxílio de visita técnica, envie a carta de aceite da " +
		"instituição de destino.\n\nData: {{.Date}}",
	entities.EventKeyOutros: "Prezado(a) {{.Name}},\n\n" +
		"Para prosseguir com sua solicitação de auxílio ({{.Motive}}), envie a documentação " +
		"comprobatória à secretaria.\n\nData: {{.Date}}",
}

var defaultSubjects = map[string]string{
	entities.EventKeyAprovacao:         "Auxílio aprovado",
	entities.EventKeyPagamento:         "Auxílio pago",
	entities.EventKeyCancelamento:      "Solicitação de auxílio cancelada",
	entities.EventKeyProntoPagamento:   "Auxílio pronto para pagamento",
	entities.EventKeyConfirmacao:       "Solicitação de auxílio recebida",
	entities.EventKeyAguardandoDocs:    "Documentação pendente",
	entities.MotiveTrabalhoCampo:       "Documentação necessária",
	entities.MotiveParticipacaoEventos: "Documentação necessária",
	entities.MotiveVisitaTecnica:       "Documentação necessária",
	entities.EventKeyOutros:            "Documentação necessária",
}

const fallbackSubject = "Solicitação de auxílio"

// TemplateData is the placeholder set supported by message bodies.
type TemplateData struct {
	Name    string
	Course  string
	Advisor string
	Value   string
	Motive  string
	Date    string
}

// TemplateRegistry resolves event keys to message bodies and renders them.
// Rendering fails soft: a broken template falls back to a minimal hard-coded
// message so a misconfigured body never aborts a transition.
type TemplateRegistry struct {
	config interfaces.INotificationConfigRepository
}

func NewTemplateRegistry(config interfaces.INotificationConfigRepository) *TemplateRegistry {
	return &TemplateRegistry{config: config}
}

// EventKeyFor picks the fixed event key for a transition's target status.
func (r *TemplateRegistry) EventKeyFor(to entities.RequestStatus) string {
	if key, ok := statusEventKeys[to]; ok {
		return key
	}
	if to == entities.StatusRecebido {
		// Submission confirmation: the only build against the initial status.
		return entities.EventKeyConfirmacao
	}
	return entities.EventKeyOutros
}

// DocumentsEventKey resolves the initial documents-request message by the
// request motive, falling back to "Outros" for an unrecognized one.
func (r *TemplateRegistry) DocumentsEventKey(motive string) string {
	switch motive {
	case entities.MotiveTrabalhoCampo, entities.MotiveParticipacaoEventos, entities.MotiveVisitaTecnica:
		return motive
	}
	return entities.EventKeyOutros
}

// Resolve returns the message body for key: the admin-edited override when
// one exists, the built-in default otherwise.
func (r *TemplateRegistry) Resolve(ctx context.Context, key string) string {
	if r.config != nil {
		if body, err := r.config.GetTemplate(ctx, key); err != nil {
			log.Printf("[notification][templates] config lookup failed key=%q err=%v", key, err)
		} else if body != "" {
			return body
		}
	}
	if body, ok := defaultTemplates[key]; ok {
		return body
	}
	return defaultTemplates[entities.EventKeyOutros]
}

// Subject returns the message subject for key.
func (r *TemplateRegistry) Subject(key string) string {
	if s, ok := defaultSubjects[key]; ok {
		return s
	}
	return fallbackSubject
}

// Render fills the placeholders of body for the given request. On any
// template error it returns a minimal fallback message and the error, so the
// caller can record it without failing the operation.
func (r *TemplateRegistry) Render(body string, req entities.AidRequest, at time.Time) (string, error) {
	data := TemplateData{
		Name:    req.RequesterName,
		Course:  req.Course,
		Advisor: req.Advisor,
		Value:   req.ApprovedValue,
		Motive:  req.Motive,
		Date:    at.Format("02/01/2006"),
	}
	if data.Value == "" {
		data.Value = req.RequestedValue
	}

	tpl, err := template.New("message").Option("missingkey=error").Parse(body)
	if err != nil {
		return fallbackBody(data), err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return fallbackBody(data), err
	}
	return buf.String(), nil
}

func fallbackBody(data TemplateData) string {
	return fmt.Sprintf("Prezado(a) %s,\n\nHá uma atualização na sua solicitação de auxílio. "+
		"Entre em contato com a secretaria para mais detalhes.\n\nData: %s", data.Name, data.Date)
}
