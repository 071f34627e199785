package query

import "sort"

// domainSynonyms maps canonical enrollment-domain terms to their synonyms.
// Keys and values are already normalized (lowercase, no diacritics).
// Expansion is one level deep: matching an entry pulls in that entry's
// synonyms only, never another entry's.
var domainSynonyms = map[string][]string{
	"matricula":       {"inscripcion", "registro", "matricularse", "inscribirse"},
	"modificacion":    {"cambio", "rectificacion", "modificar", "rectificar"},
	"convalidacion":   {"convalidar", "convalidaciones", "reconocimiento"},
	"excepcion":       {"excepcional", "especial"},
	"procedimiento":   {"proceso", "tramite", "gestion", "pasos"},
	"cronograma":      {"calendario", "plazo", "plazos", "fechas"},
	"fecha":           {"fechas", "dia", "plazo"},
	"requisitos":      {"requisito", "documentos", "expediente", "expedientes"},
	"reserva":         {"reservar", "suspension", "pausa"},
	"levantamiento":   {"levantar", "retorno", "reincorporacion"},
	"reactualizacion": {"reactualizar", "reactivacion", "reincorporacion"},
	"pago":            {"pagar", "abono", "deposito", "cancelacion"},
	"costo":           {"precio", "tarifa", "monto", "tasa", "tasas"},
	"creditos":        {"credito", "creditaje"},
	"asignatura":      {"asignaturas", "curso", "cursos", "materia", "materias"},
	"egresar":         {"egreso", "egresado", "culminar"},
	"silabo":          {"silabos", "programa", "contenidos"},
	"prerrequisito":   {"prerrequisitos", "requisito previo"},
	"resolucion":      {"resoluciones", "norma", "normativa", "reglamento"},
	"consejo":         {"autoridad", "autoridades"},
	"escuela":         {"facultad", "escuela profesional"},
	"estudiante":      {"alumno", "alumnos", "estudiantes"},
	"ingresante":      {"ingresantes", "cachimbo"},
	"retiro":          {"retirarse", "abandono", "renuncia"},
	"solicitud":       {"peticion", "formulario", "fut"},
	"presentar":       {"presento", "entregar", "entrego", "enviar"},
	"oficina":         {"mesa de partes", "secretaria", "ventanilla"},
	"virtual":         {"en linea", "online", "plataforma"},
	"jurados":         {"jurado", "evaluacion por jurados"},
	"semestre":        {"ciclo", "periodo academico", "periodo"},
	"vacante":         {"vacantes", "cupo", "cupos"},
	"profesional":     {"titulado", "graduado"},
	"particular":      {"privada", "privado"},
	"nacional":        {"publica", "estatal"},
	"equivalencia":    {"equivalencias", "equivale", "equivalente"},
	"horario":         {"horarios", "turno", "grupo"},
	"comprobante":     {"boleta", "recibo", "voucher"},
	"sancion":         {"sanciones", "penalidad", "consecuencia"},
	"tercera":         {"tercera matricula", "ultima matricula"},
}

// Expand returns the superset of tokens after one level of domain synonym
// expansion. A token matching a canonical term or any of its synonyms adds
// the canonical term and all of its synonyms. Unmatched tokens pass through
// unchanged. The result is deterministic and free of duplicates.
func Expand(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	add := func(term string) {
		if term != "" && !seen[term] {
			seen[term] = true
			out = append(out, term)
		}
	}

	for _, tok := range tokens {
		add(tok)
	}

	// Iterate entries in sorted key order so output order is stable.
	keys := make([]string, 0, len(domainSynonyms))
	for k := range domainSynonyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, canonical := range keys {
		syns := domainSynonyms[canonical]
		if !matchesEntry(tokens, canonical, syns) {
			continue
		}
		add(canonical)
		for _, s := range syns {
			add(s)
		}
	}

	return out
}

// matchesEntry reports whether any token equals the canonical term or one of
// its synonyms.
func matchesEntry(tokens []string, canonical string, syns []string) bool {
	for _, tok := range tokens {
		if tok == canonical {
			return true
		}
		for _, s := range syns {
			if tok == s {
				return true
			}
		}
	}
	return false
}
