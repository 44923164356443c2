package landedcost

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/luizmugnaicomex-art/landedcost/date"
)

// reflector builds closed, inline schemas. Dates are written as strings by date.Date's JSON
// marshaling, its fields are not part of the format.
func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(date.Date{}) {
				return &jsonschema.Schema{Type: "string", Format: "date"}
			}
			return nil
		},
	}
}

// ProfileSchema returns the JSON schema of an import profile snapshot, as read by DecodeProfile.
func ProfileSchema() *jsonschema.Schema {
	s := reflector().Reflect(jprofile{})
	s.Title = "Import cost profile"
	return s
}

// ItemSchema returns the JSON schema of a single cost line item.
func ItemSchema() *jsonschema.Schema {
	s := reflector().Reflect(jitem{})
	s.Title = "Cost line item"
	return s
}
