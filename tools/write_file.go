package tools

import (
	"github.com/petasbytes/tool-loop/internal/fsops"
)

type WriteInput struct {
	FilePath string `json:"file_path" mapstructure:"file_path" jsonschema_description:"The path of the file to write."`
	Content  string `json:"content" mapstructure:"content" jsonschema_description:"The full content to write to the file."`
}

var WriteDefinition = Definition{
	Name: Write,
	Description: `Write content to a file, replacing it if it already exists.

The parent directory must already exist.`,
	Parameters: WriteInputSchema,
}

var WriteInputSchema = GenerateSchema[WriteInput]()

func WriteFile(in WriteInput) Result {
	if err := fsops.WriteFile(in.FilePath, in.Content); err != nil {
		return Err(err.Error())
	}
	return Ok("Wrote OK " + in.FilePath)
}
