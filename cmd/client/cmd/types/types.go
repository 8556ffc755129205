package types

// ContextKey namespaces values the root command hangs on the cobra
// context for subcommands.
type ContextKey string

const ClientAppKey ContextKey = "clientApp"
