package types

import (
	"fmt"
	"sort"
)

// Kind identifies where a dataset came from and therefore which schema it carries.
type Kind string

const (
	LambdaLog   Kind = "lambda"
	SESEvent    Kind = "ses"
	Report      Kind = "report"
	LegalReport Kind = "legal"
	Adhoc       Kind = "adhoc" // schema inferred from the data itself
)

var (
	LambdaLogSchema = NewSchema(
		Column{Name: "timestamp", Type: Timestamp},
		Column{Name: "function_name", Type: String},
		Column{Name: "level", Type: String},
		Column{Name: "message", Type: String},
		Column{Name: "request_id", Type: String},
	)

	SESEventSchema = NewSchema(
		Column{Name: "timestamp", Type: Timestamp},
		Column{Name: "mail_to", Type: String},
		Column{Name: "subject", Type: String},
		Column{Name: "status", Type: String},
		Column{Name: "event_type", Type: String},
		Column{Name: "message_id", Type: String},
	)

	ReportSchema = NewSchema(
		Column{Name: "report_name", Type: String},
		Column{Name: "created_at", Type: Timestamp},
		Column{Name: "description", Type: String},
		Column{Name: "file_url", Type: String},
	)

	LegalReportSchema = NewSchema(
		Column{Name: "id", Type: String},
		Column{Name: "law_name", Type: String},
		Column{Name: "title", Type: String},
		Column{Name: "summary", Type: String},
		Column{Name: "date", Type: Date},
		Column{Name: "link", Type: String},
		Column{Name: "impact_score", Type: Float64},
		Column{Name: "risk_level", Type: String},
	)
)

var declaredSchemas = map[Kind]Schema{
	LambdaLog:   LambdaLogSchema,
	SESEvent:    SESEventSchema,
	Report:      ReportSchema,
	LegalReport: LegalReportSchema,
}

// SchemaOf returns the declared schema of a dataset kind.
func SchemaOf(kind Kind) (Schema, error) {
	schema, found := declaredSchemas[kind]
	if !found {
		return Schema{}, fmt.Errorf("%w: [%s]", ErrUnknownKind, kind)
	}
	return schema, nil
}

// DeclaredKinds lists every kind with a declared schema, sorted by name.
func DeclaredKinds() []Kind {
	kinds := make([]Kind, 0, len(declaredSchemas))
	for kind := range declaredSchemas {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
