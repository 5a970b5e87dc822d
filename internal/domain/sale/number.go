package sale

import (
	"fmt"
	"time"
)

// DefaultNumberPrefix prefijo de los números de venta.
const DefaultNumberPrefix = "VEN"

// numberSuffixRange el sufijo aleatorio se toma uniforme en [0, numberSuffixRange).
const numberSuffixRange = 10000

// RandomSource fuente de enteros uniformes; *rand.Rand de math/rand/v2 la cumple.
type RandomSource interface {
	IntN(n int) int
}

// GenerateSaleNumber arma VEN-{YYYYMMDD}-{NNNNN} con la fecha de now y un sufijo aleatorio de 5 dígitos.
// No verifica colisiones contra ventas existentes.
func GenerateSaleNumber(now time.Time, rnd RandomSource) string {
	return generateNumber(DefaultNumberPrefix, now, rnd)
}

func generateNumber(prefix string, now time.Time, rnd RandomSource) string {
	return fmt.Sprintf("%s-%s-%05d", prefix, now.Format("20060102"), rnd.IntN(numberSuffixRange))
}
