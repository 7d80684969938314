// Package services implements the driving ports: the embedding index,
// document indexer, question induction engine, interview state machine,
// report synthesizer, report-type catalog and the learning subsystem.
//
// Services depend only on domain types and driven ports. External
// capability failures (embedding, LLM) never escape as panics: the
// embedding index degrades to empty results by design so ingestion and
// search stay non-fatal, while induction and synthesis surface wrapped
// sentinel errors or fall back to deterministic defaults.
package services
