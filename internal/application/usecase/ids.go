package usecase

import (
	"strconv"
	"strings"
)

// parseID interpreta un id de ruta. ok=false si está vacío o no es entero.
func parseID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
