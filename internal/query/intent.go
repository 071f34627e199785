package query

// Intent is a boolean classification of a query's information need.
// Intents are not mutually exclusive; a query may carry several.
type Intent int

const (
	IntentDate Intent = iota
	IntentPlace
	IntentCost
	IntentRestriction
	IntentValidation
	IntentDefinition
	IntentConsequence
	IntentCredits
	IntentContact
	IntentAuthority
	IntentEquivalence
	IntentException // exception enrollment ("matrícula por excepción")
	IntentPaymentProcedure
	IntentAmount
)

// String returns a string representation of the intent.
func (i Intent) String() string {
	switch i {
	case IntentDate:
		return "date"
	case IntentPlace:
		return "place"
	case IntentCost:
		return "cost"
	case IntentRestriction:
		return "restriction"
	case IntentValidation:
		return "validation"
	case IntentDefinition:
		return "definition"
	case IntentConsequence:
		return "consequence"
	case IntentCredits:
		return "credits"
	case IntentContact:
		return "contact"
	case IntentAuthority:
		return "authority"
	case IntentEquivalence:
		return "equivalence"
	case IntentException:
		return "exception_enrollment"
	case IntentPaymentProcedure:
		return "payment_procedure"
	case IntentAmount:
		return "amount"
	default:
		return "unknown"
	}
}

// IntentSet is a set of active intents.
type IntentSet struct {
	bits uint32
}

// Has reports whether the intent is active.
func (s IntentSet) Has(i Intent) bool {
	return s.bits&(1<<uint(i)) != 0
}

// Add marks the intent as active.
func (s *IntentSet) Add(i Intent) {
	s.bits |= 1 << uint(i)
}

// Empty reports whether no intent is active.
func (s IntentSet) Empty() bool {
	return s.bits == 0
}

// Intents returns the active intents in declaration order.
func (s IntentSet) Intents() []Intent {
	var out []Intent
	for i := IntentDate; i <= IntentAmount; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// Strings returns the active intent names, for logging.
func (s IntentSet) Strings() []string {
	intents := s.Intents()
	out := make([]string, len(intents))
	for i, in := range intents {
		out[i] = in.String()
	}
	return out
}

// exceptionPhrases explicitly name exception enrollment. Their presence
// suppresses the restriction intent even when restriction trigger words
// ("puedo", "permite") also appear: "can I enroll with two pending exception
// courses" is an exception question, not a generic prohibition question.
var exceptionPhrases = []string{
	"matricula por excepcion",
	"matricula de excepcion",
	"por excepcion",
	"curso por excepcion",
	"cursos por excepcion",
}

// Classify evaluates the intent predicates over a normalized query and
// returns the set of active intents. Predicates are independent and may
// co-fire, except for the exception/restriction precedence rule above.
func Classify(normalized string) IntentSet {
	var set IntentSet

	exception := containsAny(normalized, exceptionPhrases...) ||
		(containsAny(normalized, "me faltan", "me falta") && containsAny(normalized, "egresar", "prerrequisito"))
	if exception {
		set.Add(IntentException)
	}

	if containsAny(normalized, "cuando", "fecha", "plazo", "cronograma", "calendario", "hasta que dia", "que dia", "a partir de que") {
		set.Add(IntentDate)
	}
	if containsAny(normalized, "donde", "en que lugar", "lugar", "presento", "presentar", "entrego", "entregar", "oficina", "mesa de partes", "ventanilla") {
		set.Add(IntentPlace)
	}
	if containsAny(normalized, "cuanto cuesta", "costo", "precio", "tarifa", "monto", "tasa", "pago", "pagar", "cuanto es", "cuanto debo") {
		set.Add(IntentCost)
	}
	if !exception && containsAny(normalized, "puedo", "se puede", "permite", "permitido", "prohibido", "prohibe", "esta permitido", "no se puede") {
		set.Add(IntentRestriction)
	}
	if containsAny(normalized, "convalidar", "convalidacion", "convalidaciones", "validacion de cursos", "reconocimiento de cursos") {
		set.Add(IntentValidation)
	}
	if containsAny(normalized, "que es", "que significa", "definicion", "en que consiste", "acto formal", "que se entiende por") {
		set.Add(IntentDefinition)
	}
	if containsAny(normalized, "que pasa si", "que sucede si", "que ocurre si", "consecuencia", "sancion", "si no me matriculo", "si no pago", "si abandono") {
		set.Add(IntentConsequence)
	}
	if containsAny(normalized, "credito", "creditos", "creditaje") {
		set.Add(IntentCredits)
	}
	if containsAny(normalized, "contacto", "telefono", "correo", "a quien me dirijo", "quien atiende", "con quien hablo", "a donde llamo") {
		set.Add(IntentContact)
	}
	if containsAny(normalized, "quien establece", "quien aprueba", "quien define", "quien autoriza", "quien decide", "consejo universitario", "consejo de facultad") {
		set.Add(IntentAuthority)
	}
	if containsAny(normalized, "equivalencia", "equivalencias", "equivale", "tabla de equivalencias", "equivalente a") {
		set.Add(IntentEquivalence)
	}
	if containsAny(normalized, "como pago", "como pagar", "como se paga", "donde pago", "donde se paga", "forma de pago", "procedimiento de pago", "como realizo el pago") {
		set.Add(IntentPaymentProcedure)
		set.Add(IntentCost)
	}
	if containsAny(normalized, "cuanto cuesta", "cuanto debo pagar", "cuanto se paga", "cual es el monto", "cual es el costo", "cual es la tasa", "monto a pagar") {
		set.Add(IntentAmount)
		set.Add(IntentCost)
	}

	return set
}
