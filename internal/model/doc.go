// Package model defines domain data structures used across the app: users,
// saved items, submission tasks, and status enums. Structures are designed for
// direct binding in the UI and explicit state transitions.
package model
