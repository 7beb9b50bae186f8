package validator

// Check is the shape every field validator shares. The params map carries
// cross-field context (rarely needed; usually nil).
type Check func(value string, params map[string]interface{}) bool

// Rule pairs a check with the message shown when it fails.
type Rule struct {
	Check   Check
	Message string
}

// Field is one form field with its ordered rules.
type Field struct {
	Name   string
	Value  string
	Rules  []Rule
	Params map[string]interface{}
}

// Validate runs every field's rules and returns a field -> message map with
// the first failing rule per field. An empty map means the form may be
// submitted; validation never touches the network.
func Validate(fields ...Field) map[string]string {
	errs := make(map[string]string)
	for _, field := range fields {
		for _, rule := range field.Rules {
			if !rule.Check(field.Value, field.Params) {
				errs[field.Name] = rule.Message
				break
			}
		}
	}
	return errs
}
