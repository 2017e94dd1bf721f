// Package bot is the Telegram adapter for the trip tracker. It parses
// commands, validates user input, and renders replies; all trip state lives
// behind the trip service.
package bot

import (
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Jose-TorresCL/Diditracker-bot/services"
)

// Bot wraps the Telegram API client and the core services
type Bot struct {
	api          *tgbotapi.BotAPI
	tripService  *services.TripService
	excelService *services.ExcelService
	metaPerKm    float64
}

// New creates the bot and authenticates against the Telegram API
func New(token string, tripService *services.TripService, excelService *services.ExcelService, metaPerKm float64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:          api,
		tripService:  tripService,
		excelService: excelService,
		metaPerKm:    metaPerKm,
	}, nil
}

// Run starts long polling and dispatches commands until the updates
// channel closes
func (b *Bot) Run() {
	log.Printf("Bot started - polling as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range b.api.GetUpdatesChan(u) {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		b.handleCommand(update.Message)
	}
}

// handleCommand routes one command message to its handler
func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg, helpText(b.metaPerKm))
	case "add":
		b.handleAdd(msg)
	case "stats":
		b.handleStats(msg)
	case "week":
		b.handleWeek(msg)
	case "reset":
		b.handleReset(msg)
	case "export":
		b.handleExport(msg)
	}
}

// handleAdd records a trip from "/add TARIFA KM MIN"
func (b *Bot) handleAdd(msg *tgbotapi.Message) {
	fare, distance, duration, err := parseAddArgs(msg.CommandArguments())
	switch {
	case errors.Is(err, errBadFormat):
		b.reply(msg, "❌ Formato incorrecto\n\nUsa: `/add TARIFA KM MINUTOS`\nEjemplo: `/add 5200 14 28`")
		return
	case errors.Is(err, errBadValues):
		b.reply(msg, "❌ Error en los valores ingresados\n\nVerifica que sean números válidos:\n`/add TARIFA KM MINUTOS`")
		return
	case err != nil:
		b.reply(msg, "❌ Todos los valores deben ser mayores a 0")
		return
	}

	perKm, perHour, err := b.tripService.RecordTrip(
		msg.From.ID, displayName(msg), fare, distance, duration,
	)
	if err != nil {
		log.Printf("Failed to record trip: %v", err)
		b.reply(msg, "❌ Error al registrar el viaje. Intenta nuevamente.")
		return
	}

	b.reply(msg, formatTripReply(fare, distance, duration, perKm, perHour, b.metaPerKm))
}

// handleStats replies with today's aggregates
func (b *Bot) handleStats(msg *tgbotapi.Message) {
	stats, err := b.tripService.DailyStats(msg.From.ID, "")
	if err != nil {
		log.Printf("Failed to get daily stats: %v", err)
		b.reply(msg, "❌ Error al obtener estadísticas.")
		return
	}

	b.reply(msg, formatDailyStats(stats, b.metaPerKm))
}

// handleWeek replies with the trailing 7-day aggregates
func (b *Bot) handleWeek(msg *tgbotapi.Message) {
	stats, err := b.tripService.WeeklyStats(msg.From.ID)
	if err != nil {
		log.Printf("Failed to get weekly stats: %v", err)
		b.reply(msg, "❌ Error al obtener estadísticas.")
		return
	}

	b.reply(msg, formatWeeklyStats(stats, b.metaPerKm))
}

// handleReset deletes today's trips, guarded by an explicit "confirm"
// argument. The confirmation gate lives here; the core deletes without
// asking questions.
func (b *Bot) handleReset(msg *tgbotapi.Message) {
	if msg.CommandArguments() != "confirm" {
		b.reply(msg, "⚠️ *Confirmación Requerida*\n\nEsto borrará todos los viajes de hoy.\n\nPara confirmar, usa: `/reset confirm`")
		return
	}

	if _, err := b.tripService.ResetDay(msg.From.ID, ""); err != nil {
		log.Printf("Failed to reset trips: %v", err)
		b.reply(msg, "❌ Error al borrar los datos.")
		return
	}

	b.reply(msg, "✅ Datos de hoy eliminados correctamente.")
}

// handleExport sends the weekly Excel report as a document
func (b *Bot) handleExport(msg *tgbotapi.Message) {
	excelFile, filename, err := b.excelService.ExportWeeklyReport(msg.From.ID)
	if err != nil {
		log.Printf("Failed to export report: %v", err)
		b.reply(msg, "❌ Error al generar el reporte.")
		return
	}

	buf, err := excelFile.WriteToBuffer()
	if err != nil {
		log.Printf("Failed to write report: %v", err)
		b.reply(msg, "❌ Error al generar el reporte.")
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: buf.Bytes(),
	})
	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Failed to send report: %v", err)
	}
}

// reply sends a Markdown-formatted message back to the chat
func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(out); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

// displayName prefers the Telegram username, falling back to the first name
func displayName(msg *tgbotapi.Message) string {
	if msg.From.UserName != "" {
		return msg.From.UserName
	}
	return msg.From.FirstName
}
