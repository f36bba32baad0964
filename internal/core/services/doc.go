// Package services implements the core quiz logic.
//
// Two services make up the core:
//
//   - Session: the quiz state machine. Collects answers step by step
//     and gates forward navigation until each step is complete.
//   - Engine: the product scoring engine. Ranks the catalog against a
//     finished answer set using weighted tag-matching rules.
//
// Services implement the driving ports and depend only on domain types
// and driven ports. All I/O lives behind the driven ports; scoring is a
// pure, deterministic function of its inputs.
package services
