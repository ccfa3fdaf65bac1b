package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldOperation   = "operation"
	FieldBackend     = "backend"
	FieldKey         = "key"
	FieldBytes       = "bytes"
	FieldCount       = "count"
	FieldExpenseID   = "expense_id"
	FieldExpenseName = "expense_name"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldDate        = "date"
	FieldMonth       = "month"
	FieldRevision    = "revision"
	FieldCommand     = "command"
	FieldIndex       = "index"
	FieldBudgetKey   = "budget_key"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentExpense = "expense"
	ComponentBudget  = "budget"
	ComponentReports = "reports"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentCache   = "cache"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpReplace  = "replace"
	OpDelete   = "delete"
	OpList     = "list"
	OpLoad     = "load"
	OpSave     = "save"
	OpValidate = "validate"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeStorage       = "storage_error"
	ErrorTypeCorrupt       = "corrupt_document"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds error type field
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithKey adds the document key field
func (f LogFields) WithKey(key string) LogFields {
	f[FieldKey] = key
	return f
}

// WithIndex adds the position of a record within a document
func (f LogFields) WithIndex(i int) LogFields {
	f[FieldIndex] = i
	return f
}

// WithBudgetKey adds the budget ceiling name
func (f LogFields) WithBudgetKey(key string) LogFields {
	f[FieldBudgetKey] = key
	return f
}

// WithBackend adds the storage backend field
func (f LogFields) WithBackend(backend string) LogFields {
	f[FieldBackend] = backend
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(id int64, name string, amountCents int64, category, date string) LogFields {
	f[FieldExpenseID] = id
	f[FieldExpenseName] = name
	f[FieldAmountCents] = amountCents
	f[FieldCategory] = category
	f[FieldDate] = date
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
