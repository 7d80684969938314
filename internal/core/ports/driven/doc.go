// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TextExtractor: Turns document files into plain text
//   - VectorStore: Chunk + embedding persistence and similarity search
//   - ReportTypeStore: Report-type catalog persistence
//   - SessionStore: Interview session storage
//   - FeedbackStore: Feedback log and insight persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EmbeddingService: Generates vector embeddings. Without it, indexing
//     and semantic search are disabled.
//   - LLMService: Language model operations. Without it, question
//     induction and report synthesis are disabled (the interview state
//     machine itself still works).
//   - PromptStore: Editable prompt templates. Without it, embedded
//     defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
