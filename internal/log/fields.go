package log

// Common field names for structured logging
const (
	FieldComponent        = "component"
	FieldRunID            = "run_id"
	FieldError            = "error"
	FieldErrorType        = "error_type"
	FieldOperation        = "operation"
	FieldSuccess          = "success"
	FieldDuration         = "duration_ms"
	FieldEntryID          = "entry_id"
	FieldKind             = "kind"
	FieldAmountCents      = "amount_cents"
	FieldCategory         = "category"
	FieldOccurredOn       = "occurred_on"
	FieldFilter           = "filter"
	FieldCount            = "count"
	FieldMigrationVersion = "migration_version"
	FieldScreen           = "screen"
	FieldBackend          = "backend"
	FieldDBPath           = "db_path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentEntry   = "entry"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentUI      = "ui"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpList     = "list"
	OpMigrate  = "migrate"
	OpValidate = "validate"
	OpNavigate = "navigate"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDatabase      = "database_error"
	ErrorTypeConstraint    = "constraint_error"
	ErrorTypeMigration     = "migration_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithRunID adds the per-process run identifier
func (f LogFields) WithRunID(runID string) LogFields {
	f[FieldRunID] = runID
	return f
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

// WithEntry adds entry-related fields
func (f LogFields) WithEntry(kind string, amountCents int64, category, occurredOn string) LogFields {
	f[FieldKind] = kind
	f[FieldAmountCents] = amountCents
	f[FieldCategory] = category
	f[FieldOccurredOn] = occurredOn
	return f
}

// WithEntryID adds the storage-assigned entry id
func (f LogFields) WithEntryID(id int64) LogFields {
	f[FieldEntryID] = id
	return f
}

// WithScreen adds the active screen
func (f LogFields) WithScreen(screen string) LogFields {
	f[FieldScreen] = screen
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
