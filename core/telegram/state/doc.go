// Package state keeps per-conversation dialog state in memory. Entries are
// keyed by the Telegram sender ID and hold a small FSM state plus one typed
// payload; nothing survives a restart.
package state
