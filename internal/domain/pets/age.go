package pets

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InvalidAge es lo que devuelve Age cuando la fecha no tiene tres partes.
const InvalidAge = "0 anos"

// Age calcula la edad legible ("3 anos", "5 meses", "1 mes") a partir de una
// fecha DD/MM/YYYY. No falla nunca: una fecha mal formada degrada a InvalidAge.
//
// Menos de un año completo se expresa en meses; 0 y 1 meses dan "1 mes".
func Age(birthDate string, now time.Time) string {
	parts := strings.Split(birthDate, "/")
	if len(parts) != 3 {
		return InvalidAge
	}

	day := atoiLenient(parts[0])
	month := atoiLenient(parts[1])
	year := atoiLenient(parts[2])

	// time.Date normaliza desbordes (31/02 -> 03/03), igual que el calendario del front.
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())

	years := now.Year() - birth.Year()
	monthDiff := int(now.Month()) - int(birth.Month())
	if monthDiff < 0 || (monthDiff == 0 && now.Day() < birth.Day()) {
		years--
	}

	if years < 1 {
		months := (now.Year()-birth.Year())*12 + int(now.Month()) - int(birth.Month())
		if months <= 1 {
			return "1 mes"
		}
		return fmt.Sprintf("%d meses", months)
	}
	if years == 1 {
		return "1 ano"
	}
	return fmt.Sprintf("%d anos", years)
}

// atoiLenient toma el entero inicial del texto; sin dígitos vale 0.
func atoiLenient(s string) int {
	n, ok := LeadingInt(s)
	if !ok {
		return 0
	}
	return n
}

// LeadingInt interpreta el entero al inicio de s (espacios iniciales y signo
// opcionales), ignorando lo que sigue: "8 anos" -> 8. Si no empieza con un
// número devuelve ok=false.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
