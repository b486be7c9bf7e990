package tools

import "context"

// Registry is a fixed, ordered tool table built once at startup and
// read-only thereafter. Lookup is by exact name.
type Registry struct {
	tools []Tool
	index map[string]int
}

func NewRegistry(ts ...Tool) *Registry {
	r := &Registry{
		tools: ts,
		index: make(map[string]int, len(ts)),
	}
	for i, t := range ts {
		r.index[t.Name] = i
	}
	return r
}

// DefaultRegistry returns the built-in tool set.
func DefaultRegistry() *Registry {
	return NewRegistry(
		BookAppointmentTool(),
		CheckOrderStatusTool(),
	)
}

// List returns the tools in registration order, for attaching their schemas
// to a model request.
func (r *Registry) List() []Tool {
	return r.tools
}

// Execute resolves name and invokes the matching handler with the raw
// argument map. No schema validation happens here: the model is trusted to
// follow the declared schema and handlers check their own inputs. found is
// false when no tool carries that name; result is empty in that case.
func (r *Registry) Execute(ctx context.Context, name string, input map[string]interface{}) (result string, found bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	out, err := r.tools[i].Execute(ctx, input)
	if err != nil {
		// Built-in handlers never error; a real integration swapped in
		// here might. Surface it as a plain result string so the model
		// can relay it.
		return "error: " + err.Error(), true
	}
	return out, true
}
