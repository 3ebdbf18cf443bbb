// Package mapping translates between API field names and database columns.
//
// Each entity declares a single FieldMap as its source of truth. Requests are
// translated column-ward before they reach a repository and records are
// translated field-ward before they reach a response, so neither side ever
// sees the other's naming.
package mapping

// FieldMap maps API field names to their database columns for one entity.
type FieldMap map[string]string

// Fields returns the API field names the map knows about.
func (m FieldMap) Fields() []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}

	return fields
}

// Column resolves a single API field to its column. The second return value
// reports whether the field is known.
func (m FieldMap) Column(field string) (string, bool) {
	column, ok := m[field]

	return column, ok
}

// ToRecord converts an API-shaped payload into a column-keyed record. Fields
// without a mapping are dropped, so unknown or unexpected payload keys can
// never reach a query.
func (m FieldMap) ToRecord(payload map[string]any) map[string]any {
	record := make(map[string]any, len(payload))

	for field, value := range payload {
		column, ok := m[field]
		if !ok {
			continue
		}

		record[column] = value
	}

	return record
}

// ToAPI converts a column-keyed record back into API field names using the
// inverse mapping. Columns without a mapping are dropped.
func (m FieldMap) ToAPI(record map[string]any) map[string]any {
	inverse := m.inverse()

	payload := make(map[string]any, len(record))

	for column, value := range record {
		field, ok := inverse[column]
		if !ok {
			continue
		}

		payload[field] = value
	}

	return payload
}

func (m FieldMap) inverse() map[string]string {
	inverse := make(map[string]string, len(m))
	for field, column := range m {
		inverse[column] = field
	}

	return inverse
}
