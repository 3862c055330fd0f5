package liteorm

// Plan describes what the Executor should run.
type Plan struct {
	Query string
	Args  []any
}
