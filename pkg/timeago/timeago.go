// Package timeago humaniza duraciones relativas en cubetas fijas
// (años/meses/días/horas/minutos) para el centro de notificaciones.
package timeago

import (
	"fmt"
	"time"
)

// Tamaños fijos de cada cubeta, en segundos.
const (
	yearSeconds   = 365 * 24 * 3600
	monthSeconds  = 30 * 24 * 3600
	daySeconds    = 24 * 3600
	hourSeconds   = 3600
	minuteSeconds = 60
)

// Since devuelve la antigüedad de t respecto a now como texto humanizado.
// Una cubeta se activa cuando los segundos transcurridos superan su tamaño;
// el valor mostrado es la división entera. Por debajo del minuto: "just now".
// El sufijo "m" sirve tanto para meses como para minutos.
func Since(now, t time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)

	switch {
	case seconds > yearSeconds:
		return fmt.Sprintf("%dy ago", seconds/yearSeconds)
	case seconds > monthSeconds:
		return fmt.Sprintf("%dm ago", seconds/monthSeconds)
	case seconds > daySeconds:
		return fmt.Sprintf("%dd ago", seconds/daySeconds)
	case seconds > hourSeconds:
		return fmt.Sprintf("%dh ago", seconds/hourSeconds)
	case seconds > minuteSeconds:
		return fmt.Sprintf("%dm ago", seconds/minuteSeconds)
	default:
		return "just now"
	}
}
