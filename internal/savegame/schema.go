package savegame

import (
	"github.com/invopop/jsonschema"
)

// Schema описывает документ сохранения. Лишние поля разрешены: Decode их пропускает.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Document))
	schema.Title = "Cloverfield save document"
	schema.Description = "Single save slot written by the Cloverfield server"
	return schema
}
