package journal

// Schema DDL for the journal database.
const (
	createOperations = `CREATE TABLE IF NOT EXISTS operations (
    operation_id TEXT PRIMARY KEY,
    operation TEXT NOT NULL,
    outcome TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`

	idxOperationsCreated = `CREATE INDEX IF NOT EXISTS idx_operations_created ON operations(created_at);`
)

// schemaDDL lists every statement run when the journal is opened.
var schemaDDL = []string{
	createOperations,
	idxOperationsCreated,
}
