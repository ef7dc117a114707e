package usecase

// normalizePage acota los parámetros de paginación a valores sanos.
func normalizePage(limit, offset int) (int, int) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
