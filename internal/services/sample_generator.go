package services

import (
	"fmt"
	"math/rand"
	"time"

	"financas-api/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// notificationTemplate is one realistic push-notification shape. The
// format string receives the formatted amount and a merchant name.
type notificationTemplate struct {
	source  string
	format  string
	minor   int // minimum amount in centavos
	major   int // maximum amount in centavos
	inbound bool
}

type sampleGenerator struct {
	templates []notificationTemplate
	merchants []string
	rng       *rand.Rand
}

// NewSampleGenerator creates a generator of realistic banking push
// notifications, used to seed development environments.
func NewSampleGenerator() SampleGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleGenerator{
		templates: initializeTemplates(),
		merchants: initializeMerchantPool(),
		rng:       rand.New(source),
	}
}

func initializeTemplates() []notificationTemplate {
	return []notificationTemplate{
		{"Nubank", "Compra aprovada R$ %s no %s", 500, 30000, false},
		{"Nubank", "Compra de R$ %s APROVADA em %s", 500, 30000, false},
		{"Bradesco", "Bradesco: compra de R$ %s %s", 1000, 50000, false},
		{"Inter", "Pix enviado R$ %s para %s", 1000, 100000, false},
		{"Itaú", "Itaú: transação de R$ %s em %s cartão final 4321", 2000, 40000, false},
		{"Nubank", "Pix recebido R$ %s de %s", 5000, 300000, true},
		{"Inter", "Você recebeu um Pix de R$ %s de %s", 5000, 300000, true},
		{"Bradesco", "Depósito de R$ %s recebido de %s", 10000, 500000, true},
		{"Nubank", "Estorno de R$ %s de %s", 500, 20000, true},
	}
}

func initializeMerchantPool() []string {
	return []string{
		"Ifood", "Uber", "99", "Mercado Livre", "Amazon",
		"Padaria Estrela", "Supermercado Dia", "Carrefour", "Drogasil",
		"Posto Shell", "Netflix", "Spotify", "Americanas", "Magalu",
		"Restaurante Sabor Caseiro", "Açougue Central", "Hortifruti",
	}
}

// GenerateNotifications produces count notifications with timestamps
// spread uniformly between start and end
func (g *sampleGenerator) GenerateNotifications(count int, start, end time.Time) []*models.Notification {
	if count <= 0 || !end.After(start) {
		return nil
	}

	notifications := make([]*models.Notification, 0, count)
	for i := 0; i < count; i++ {
		template := g.templates[g.rng.Intn(len(g.templates))]
		merchant := g.pickMerchant(template.inbound)
		centavos := template.minor + g.rng.Intn(template.major-template.minor+1)
		amount := decimal.New(int64(centavos), -2)

		notifications = append(notifications, &models.Notification{
			Source:     template.source,
			Message:    fmt.Sprintf(template.format, formatBrazilianAmount(amount), merchant),
			OccurredAt: g.randomTimestamp(start, end),
		})
	}

	return notifications
}

func (g *sampleGenerator) pickMerchant(inbound bool) string {
	// Inbound money tends to come from people, not merchants
	if inbound && g.rng.Intn(2) == 0 {
		return gofakeit.Name()
	}
	return g.merchants[g.rng.Intn(len(g.merchants))]
}

func (g *sampleGenerator) randomTimestamp(start, end time.Time) time.Time {
	span := end.Sub(start)
	return start.Add(time.Duration(g.rng.Int63n(int64(span))))
}

// formatBrazilianAmount renders a decimal as the "1.234,56" form used
// in the notification texts
func formatBrazilianAmount(amount decimal.Decimal) string {
	plain := amount.StringFixed(2)

	intPart := plain[:len(plain)-3]
	fracPart := plain[len(plain)-2:]

	var grouped []byte
	for i, digit := range []byte(intPart) {
		remaining := len(intPart) - i
		if i > 0 && remaining%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, digit)
	}

	return string(grouped) + "," + fracPart
}
