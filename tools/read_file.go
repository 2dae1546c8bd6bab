package tools

import (
	"github.com/petasbytes/tool-loop/internal/fsops"
)

type ReadInput struct {
	FilePath string `json:"file_path" mapstructure:"file_path" jsonschema_description:"The path to the file to read."`
}

var ReadDefinition = Definition{
	Name:        Read,
	Description: "Read and return the contents of a file.",
	Parameters:  ReadInputSchema,
}

var ReadInputSchema = GenerateSchema[ReadInput]()

// ReadFile returns the whole file as text. Missing paths, non-regular files
// and .env files are reported as Err results.
func ReadFile(in ReadInput) Result {
	content, err := fsops.ReadFile(in.FilePath)
	if err != nil {
		return Err(err.Error())
	}
	return Ok(content)
}
