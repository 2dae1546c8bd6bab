package tools

// Registry returns every tool definition offered to the model, in a stable order.
func Registry() []Definition {
	return []Definition{BashDefinition, ReadDefinition, WriteDefinition}
}
