package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Jose-TorresCL/Diditracker-bot/models"
	"github.com/Jose-TorresCL/Diditracker-bot/utils"
)

// Parsing and formatting for the Telegram commands. Everything here is pure
// so the reply texts can be tested without a live bot.

var (
	errBadFormat = errors.New("wrong number of arguments")
	errBadValues = errors.New("arguments are not valid numbers")
)

// parseAddArgs parses "/add TARIFA KM MIN" arguments and enforces the
// strictly-positive precondition the core itself does not check
func parseAddArgs(args string) (float64, float64, int, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return 0, 0, 0, errBadFormat
	}

	fare, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, 0, errBadValues
	}
	distance, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, 0, errBadValues
	}
	duration, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, errBadValues
	}

	if err := utils.ValidateTripInput(fare, distance, duration); err != nil {
		return 0, 0, 0, err
	}

	return fare, distance, duration, nil
}

// helpText is the /start reply
func helpText(metaPerKm float64) string {
	return fmt.Sprintf(`*🚗 Mi Didi Tracker Pro 🚗*

¡Hola! Soy tu asistente para analizar la rentabilidad de tus viajes Didi.

*📋 Comandos disponibles:*

• `+"`/add TARIFA KM MIN`"+` - Registra un viaje
  Ejemplo: `+"`/add 5200 14 28`"+`

• `+"`/stats`"+` - Ver estadísticas de hoy 📊

• `+"`/week`"+` - Ver estadísticas de la semana 📈

• `+"`/export`"+` - Descargar reporte semanal 📄

• `+"`/reset`"+` - Borrar datos de hoy ⚠️

*💡 Cómo funciona:*
Después de cada viaje, envía `+"`/add TARIFA KM MINUTOS`"+`
Te mostraré tu ganancia por km (meta: $%.0f/km) y por hora.

¡Comencemos a rastrear tus ganancias! 💰`, metaPerKm)
}

// formatTripReply renders the /add confirmation with both rates and the
// met-target marker
func formatTripReply(fare, distance float64, duration int, perKm, perHour, metaPerKm float64) string {
	statusEmoji := "✅"
	verdict := "¡Superaste la meta!"
	if perKm < metaPerKm {
		statusEmoji = "⚠️"
		verdict = "🔴 Por debajo de la meta"
	}

	return fmt.Sprintf(`%s *Viaje Registrado*

💰 Tarifa: $%.0f
🚗 Distancia: %.1f km
⏱️ Duración: %d min

*Rentabilidad:*
📊 $/km: $%.0f (meta: $%.0f/km)
💵 $/hora: $%.0f

%s`, statusEmoji, fare, distance, duration, perKm, metaPerKm, perHour, verdict)
}

// formatDailyStats renders the /stats reply
func formatDailyStats(stats models.TripStats, metaPerKm float64) string {
	if stats.TripCount == 0 {
		return "📊 *Estadísticas de Hoy*\n\nNo hay viajes registrados aún."
	}

	return fmt.Sprintf(`📊 *Estadísticas de Hoy*

🚗 Viajes: %d
💰 Total ganado: $%.0f
📍 KM totales: %.1f km
📈 Promedio $/km: $%.0f (meta: $%.0f/km)

%s`, stats.TripCount, stats.TotalFare, stats.TotalDistance, stats.AvgPerKm, metaPerKm,
		targetVerdict(stats.AvgPerKm, metaPerKm, "¡Superaste la meta!", "Por debajo de la meta"))
}

// formatWeeklyStats renders the /week reply
func formatWeeklyStats(stats models.TripStats, metaPerKm float64) string {
	if stats.TripCount == 0 {
		return "📈 *Estadísticas de la Semana*\n\nNo hay viajes registrados en los últimos 7 días."
	}

	return fmt.Sprintf(`📈 *Estadísticas de la Última Semana*

🚗 Viajes: %d
💰 Total ganado: $%.0f
📍 KM totales: %.1f km
📊 Promedio $/km: $%.0f (meta: $%.0f/km)

%s`, stats.TripCount, stats.TotalFare, stats.TotalDistance, stats.AvgPerKm, metaPerKm,
		targetVerdict(stats.AvgPerKm, metaPerKm, "¡Excelente desempeño!", "Busca mejorar tus ganancias"))
}

// targetVerdict picks the met/missed line with its status emoji
func targetVerdict(avgPerKm, metaPerKm float64, met, missed string) string {
	if avgPerKm >= metaPerKm {
		return "✅ " + met
	}
	return "⚠️ " + missed
}
