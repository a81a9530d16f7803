package storage

// Nombres de tabla del documento.
const (
	tableProducts   = "products"
	tableCategories = "categories"
	tableMovements  = "movements"
	tableUsers      = "users"
	tableReports    = "reports"
	tableActivities = "activities"
)

// DeletePolicy declara cómo borra cada tabla.
type DeletePolicy int

const (
	// DeleteHard elimina la fila de la tabla.
	DeleteHard DeletePolicy = iota
	// DeleteSoft marca la fila con IsActive=false y la deja en la tabla.
	DeleteSoft
)

// deletePolicies es la política de borrado declarada por tabla, consultada
// por el único punto de borrado de cada repositorio (antes cada caller
// decidía por su cuenta).
var deletePolicies = map[string]DeletePolicy{
	tableProducts:   DeleteHard,
	tableMovements:  DeleteHard,
	tableReports:    DeleteHard,
	tableCategories: DeleteSoft,
	tableUsers:      DeleteSoft,
}

func policyFor(table string) DeletePolicy {
	return deletePolicies[table]
}

// nextID asigna máximo+1, o 1 en tabla vacía. Los ids crecen de forma
// estrictamente monótona mientras existan filas; tras vaciar una tabla la
// numeración reinicia en 1 (caso aceptado en uso mono-proceso).
func nextID[T any](rows []T, id func(*T) int64) int64 {
	var max int64
	for i := range rows {
		if v := id(&rows[i]); v > max {
			max = v
		}
	}
	return max + 1
}

// indexOf localiza una fila por id con búsqueda lineal; -1 si no existe.
func indexOf[T any](rows []T, want int64, id func(*T) int64) int {
	for i := range rows {
		if id(&rows[i]) == want {
			return i
		}
	}
	return -1
}
